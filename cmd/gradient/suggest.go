// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/gradients/enums"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSimilarity is the least similarity of a suggested name.
const minSimilarity = 0.5

// suggest returns the value name of the given enum that is most similar
// to s, ignoring case, or "" if none is similar enough.
func suggest(s string, e enums.Enum) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", minSimilarity
	for _, v := range e.Values() {
		name := v.String()
		if sim := strutil.Similarity(s, name, lev); sim > bestSim {
			best, bestSim = name, sim
		}
	}
	return best
}

// setEnum sets e from s, adding the most similar value name
// to the error for an invalid s.
func setEnum(e enums.EnumSetter, s string) error {
	err := e.SetString(s)
	if err == nil {
		return nil
	}
	if name := suggest(s, e); name != "" {
		return fmt.Errorf("%w; did you mean %q?", err, name)
	}
	return err
}
