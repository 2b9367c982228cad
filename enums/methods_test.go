// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// it is much easier to test with an independent enum mock
type enum int64

var enumValueMap = map[string]enum{"Apple": 5, "Pear": 3}

func (e enum) String() string    { return String(e, map[enum]string{5: "Apple", 3: "Pear"}) }
func (e enum) Int64() int64      { return int64(e) }
func (e enum) Desc() string      { return "extendedDesc" }
func (e enum) Values() []Enum    { return Values([]enum{5, 3}) }
func (e *enum) SetInt64(i int64) { *e = enum(i) }
func (e *enum) SetString(s string) error {
	if s == "Orange" {
		return errors.New("invalid")
	}
	return SetString(e, s, enumValueMap, "Fruits")
}
func (e enum) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
func (e *enum) UnmarshalText(text []byte) error {
	return UnmarshalText(e, text, "Fruits")
}

func TestString(t *testing.T) {
	m := map[enum]string{5: "Apple"}

	assert.Equal(t, "Apple", String(5, m))
	assert.Equal(t, "3", String(3, m))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]enum{"apple": 5}

	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	assert.NoError(t, SetStringLower(&i, "Apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err = SetStringLower(&i, "Orange", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Orange is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	descMap := map[enum]string{5: "A red fruit"}

	assert.Equal(t, "A red fruit", Desc(enum(5), descMap))
	assert.Equal(t, "Pear", Desc(enum(3), descMap))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
}

func TestNextPrev(t *testing.T) {
	values := []enum{2, 4, 6}
	assert.Equal(t, enum(4), Next(enum(2), values))
	assert.Equal(t, enum(2), Next(enum(6), values))
	assert.Equal(t, enum(2), Next(enum(9), values))
	assert.Equal(t, enum(6), Prev(enum(2), values))
	assert.Equal(t, enum(2), Prev(enum(4), values))
	assert.Equal(t, enum(6), Prev(enum(9), values))
}

func TestText(t *testing.T) {
	type fruits struct {
		Fruit enum
	}
	b, err := yaml.Marshal(fruits{Fruit: 3})
	assert.NoError(t, err)
	assert.Equal(t, "fruit: Pear\n", string(b))

	var f fruits
	assert.NoError(t, yaml.Unmarshal([]byte("fruit: Apple\n"), &f))
	assert.Equal(t, enum(5), f.Fruit)

	f.Fruit = 3
	assert.Error(t, yaml.Unmarshal([]byte("fruit: Orange\n"), &f))
	assert.Equal(t, enum(3), f.Fruit)
}
