// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// String returns the string representation of the given
// enum value with the given map.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. It also tries the lowercase
// version of the given string if the original version fails.
func SetStringLower[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value.
func Desc[T EnumConstraint](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum]s.
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// Next returns the value after i in values, wrapping around
// from the last value to the first. A value not in values
// returns the first value.
func Next[T EnumConstraint](i T, values []T) T {
	idx := slices.Index(values, i)
	return values[(idx+1)%len(values)]
}

// Prev returns the value before i in values, wrapping around
// from the first value to the last. A value not in values
// returns the last value.
func Prev[T EnumConstraint](i T, values []T) T {
	idx := slices.Index(values, i)
	if idx <= 0 {
		return values[len(values)-1]
	}
	return values[idx-1]
}

// UnmarshalText loads the enum from the given text.
// Any error is logged and returned, and the value is left unchanged.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		err = fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
		slog.Error(err.Error())
		return err
	}
	return nil
}
