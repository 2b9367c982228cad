// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// FromName returns the color for the given CSS color name, or
// an error if there is no such color. Names are case insensitive
// and "transparent" is accepted.
func FromName(name string) (ARGB, error) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return Transparent, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Transparent, fmt.Errorf("colors.FromName: name not found: %s", name)
	}
	return FromColor(c), nil
}

// FromHex parses the given hex color string, which must start with #
// and can be in the form #rgb, #rrggbb or #rrggbbaa.
func FromHex(hex string) (ARGB, error) {
	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("colors.FromHex: invalid alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Transparent, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := c.RGB255()
	return FromRGBA(r, g, b, alpha), nil
}

// FromString returns the color for a hex string starting with #,
// a packed 0xAARRGGBB literal, or a color name.
func FromString(s string) (ARGB, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Transparent, fmt.Errorf("colors.FromString: %w", err)
		}
		return ARGB(v), nil
	}
	return FromName(s)
}
