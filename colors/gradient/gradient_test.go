// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"math"
	"testing"

	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colors"
	"cogentcore.org/gradients/colors/spaces"
	"cogentcore.org/gradients/easing"
	"cogentcore.org/gradients/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red    = colors.FromRGBA(255, 0, 0, 255)
	green  = colors.FromRGBA(0, 255, 0, 255)
	blue   = colors.FromRGBA(0, 0, 255, 255)
	yellow = colors.FromRGBA(255, 255, 0, 255)
)

// maxDiff returns the largest difference between the channels of a and b.
func maxDiff(a, b colors.ARGB) int {
	d := 0
	for _, sh := range []uint{0, 8, 16, 24} {
		ca, cb := int(uint8(a>>sh)), int(uint8(b>>sh))
		d = max(d, ca-cb, cb-ca)
	}
	return d
}

func positions(g *Gradient) []float32 {
	var ps []float32
	for _, s := range g.Stops() {
		ps = append(ps, s.Pos)
	}
	return ps
}

func TestEmpty(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, colors.Black, g.Evaluate(0))
	assert.Equal(t, colors.Black, g.Evaluate(0.5))
	assert.Equal(t, colors.Black, g.LastColor())
	assert.Equal(t, 0, g.PrimeAnimation().Len())

	err := g.RemoveLast()
	assert.ErrorIs(t, err, ErrStopIndex)
	_, err = g.StopColor(0)
	assert.ErrorIs(t, err, ErrStopIndex)
}

func TestSingle(t *testing.T) {
	c := colors.FromRGBA(10, 200, 30, 128)
	g := New(c)
	for _, pos := range []float32{0, 0.5, 1, -3.2, 7} {
		assert.Equal(t, c, g.Evaluate(pos))
	}
	g.SetOffset(0.3)
	assert.Equal(t, c, g.Evaluate(0.5))
}

func TestDefaults(t *testing.T) {
	g := New(red, blue)
	assert.Equal(t, spaces.LUV, g.Space())
	assert.Equal(t, easing.SmoothStep, g.Easing())
	assert.Equal(t, []float32{0, 1}, positions(g))
	assert.Equal(t, []float32{0, 0.5, 1}, positions(New(red, green, blue)))
}

func TestBoundaryExact(t *testing.T) {
	rnd := randx.NewSysRand(7)
	for _, s := range spaces.SpacesValues() {
		for _, e := range easing.EasingsValues() {
			g := NewRandomWithStops(6, rnd).SetSpace(s).SetEasing(e)
			stops := g.Stops()
			// backward then forward, to move the cursor both ways
			for i := len(stops) - 1; i >= 0; i-- {
				assert.Equal(t, stops[i].Color, g.Evaluate(stops[i].Pos), "%v %v stop %d", s, e, i)
			}
			for i := range stops {
				assert.Equal(t, stops[i].Color, g.Evaluate(stops[i].Pos), "%v %v stop %d", s, e, i)
			}
		}
	}
}

func TestMidGray(t *testing.T) {
	g := New(colors.Black, colors.White).SetSpace(spaces.RGB).SetEasing(easing.Linear)
	c := g.Evaluate(0.5)
	assert.Contains(t, []uint8{127, 128}, c.R())
	assert.Equal(t, c.R(), c.G())
	assert.Equal(t, c.R(), c.B())
	assert.Equal(t, uint8(255), c.A())
}

func TestThreeStops(t *testing.T) {
	g := New(red, green, blue).SetSpace(spaces.RGB).SetEasing(easing.Linear)
	assert.Equal(t, colors.FromRGBA(128, 128, 0, 255), g.Evaluate(0.25))
	assert.Equal(t, colors.FromRGBA(0, 128, 128, 255), g.Evaluate(0.75))

	for _, s := range spaces.SpacesValues() {
		g.SetSpace(s).SetEasing(easing.SmoothStep)
		for _, pos := range []float32{0.25, 0.75} {
			c := g.Evaluate(pos)
			assert.NotEqual(t, red, c, s.String())
			assert.NotEqual(t, green, c, s.String())
			assert.NotEqual(t, blue, c, s.String())
		}
	}
}

func TestContinuity(t *testing.T) {
	g := New(red, yellow, colors.White, blue)
	for _, s := range spaces.SpacesValues() {
		if s == spaces.Temp {
			// stop colors are not black body colors, so Temp jumps at stops
			continue
		}
		g.SetSpace(s)
		// quick spaces do not round trip the stop colors exactly
		bound := 8
		if s.IsQuick() {
			bound = 12
		}
		prev := g.Evaluate(0)
		for i := 1; i <= 10000; i++ {
			c := g.Evaluate(float32(i) / 10000)
			if !assert.LessOrEqual(t, maxDiff(prev, c), bound, "%v at %d: %v %v", s, i, prev, c) {
				break
			}
			prev = c
		}
	}
}

func TestWrap(t *testing.T) {
	rnd := randx.NewSysRand(3)
	g := NewRandomWithStops(5, rnd)
	ref := NewFromStops(g.Stops()...)
	for range 1000 {
		p := randx.UniformMinMax(-3, 3, rnd)
		o := randx.UniformMinMax(-2, 2, rnd)
		q := p + o
		if q < 0 || q > 1 {
			q = math32.Wrap(q)
		}
		g.SetOffset(o)
		assert.Equal(t, ref.Evaluate(q), g.Evaluate(p), "p %v o %v", p, o)
	}

	// negative positions wrap from the top
	h := New(red, blue).SetSpace(spaces.RGB)
	assert.Equal(t, h.Evaluate(0.75), h.Evaluate(-0.25))
	assert.Equal(t, h.Evaluate(0.5), h.Evaluate(2.5))
	assert.Equal(t, blue, h.Evaluate(1))
	assert.Equal(t, h.Evaluate(0), h.Evaluate(float32(math.NaN())))
	assert.Equal(t, h.Evaluate(0), h.Evaluate(math32.Inf(1)))
}

func TestRandomAccess(t *testing.T) {
	rnd := randx.NewSysRand(11)
	g := NewRandomWithStops(12, rnd).SetSpace(spaces.LAB)
	for range 2000 {
		pos := rnd.Float32()
		fresh := NewFromStops(g.Stops()...).SetSpace(spaces.LAB)
		assert.Equal(t, fresh.Evaluate(pos), g.Evaluate(pos), "pos %v", pos)
	}
}

func TestAlphaLinear(t *testing.T) {
	g := New(red.WithAlpha(0), red).SetSpace(spaces.RGB).SetEasing(easing.SmootherStep)
	c := g.Evaluate(0.25)
	assert.Equal(t, uint8(64), c.A())
	assert.Equal(t, uint8(255), c.R())
	assert.Equal(t, uint8(191), g.Evaluate(0.75).A())
}

func TestPushRemoveLast(t *testing.T) {
	g := New(red, green, blue)
	g.Push(yellow)
	assert.Equal(t, 4, g.Len())
	ps := positions(g)
	assert.InDeltaSlice(t, []float32{0, 1.0 / 3, 2.0 / 3, 1}, ps, 1e-6)
	assert.Equal(t, yellow, g.LastColor())

	require.NoError(t, g.RemoveLast())
	assert.InDeltaSlice(t, []float32{0, 0.5, 1}, positions(g), 1e-6)
	assert.Equal(t, blue, g.LastColor())

	rnd := randx.NewSysRand(5)
	g = NewRandomWithStops(7, rnd)
	orig := positions(g)
	g.Push(red)
	require.NoError(t, g.RemoveLast())
	assert.InDeltaSlice(t, orig, positions(g), 1e-6)

	// a single remaining stop is not expanded
	g = New(red, blue)
	require.NoError(t, g.RemoveLast())
	assert.Equal(t, []float32{0}, positions(g))
	require.NoError(t, g.RemoveLast())
	assert.Equal(t, 0, g.Len())
}

func TestPrimeAnimation(t *testing.T) {
	g := New(red, green, blue).PrimeAnimation()
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, red, g.LastColor())
	assert.Equal(t, g.Evaluate(0), g.Evaluate(1))

	g.Animate(0.25).Animate(0.25)
	assert.Equal(t, float32(0.5), g.Offset())
	ref := NewFromStops(g.Stops()...)
	assert.Equal(t, ref.Evaluate(0.5), g.Evaluate(0))
	assert.Equal(t, ref.Evaluate(0.25), g.Evaluate(0.75))
}

func TestNearDuplicates(t *testing.T) {
	white := colors.White
	g := New(red, blue).Add(0.5, green).Add(0.5005, white)
	assert.Equal(t, 3, g.Len())
	c, err := g.StopColor(1)
	require.NoError(t, err)
	assert.Equal(t, white, c)

	g.Add(0.9995, yellow)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, yellow, g.LastColor())

	g = NewFromStops(NewStop(0, red), NewStop(0.3, green), NewStop(0.3002, blue), NewStop(1, yellow))
	assert.Equal(t, 3, g.Len())
	c, _ = g.StopColor(1)
	assert.Equal(t, blue, c)

	// stops further apart than the tolerance are kept
	g = New(red, blue).Add(0.5, green).Add(0.502, white)
	assert.Equal(t, 4, g.Len())
}

func TestIndexErrors(t *testing.T) {
	g := New(red, green, blue)
	before := g.Stops()
	for _, i := range []int{-1, 3, 100} {
		assert.ErrorIs(t, g.SetStopColor(i, yellow), ErrStopIndex)
		assert.ErrorIs(t, g.SetStopPosition(i, 0.2), ErrStopIndex)
		assert.ErrorIs(t, g.Remove(i), ErrStopIndex)
		_, err := g.StopColor(i)
		assert.ErrorIs(t, err, ErrStopIndex)
	}
	assert.Equal(t, before, g.Stops())
	assert.ErrorContains(t, g.SetStopColor(3, yellow), "Gradient.SetStopColor")
}

func TestSetStop(t *testing.T) {
	g := New(red, green, blue)
	require.NoError(t, g.SetStopPosition(0, 0.75))
	assert.Equal(t, []float32{0.5, 0.75, 1}, positions(g))
	c, _ := g.StopColor(1)
	assert.Equal(t, red, c)

	require.NoError(t, g.SetStopPosition(1, -0.75))
	assert.Equal(t, []float32{0.25, 0.5, 1}, positions(g))

	require.NoError(t, g.SetStopColor(2, yellow))
	assert.Equal(t, yellow, g.LastColor())
	assert.Equal(t, yellow, g.Evaluate(1))

	// moving onto another stop replaces it
	require.NoError(t, g.SetStopPosition(0, 0.5))
	assert.Equal(t, 2, g.Len())
	c, _ = g.StopColor(0)
	assert.Equal(t, red, c)

	require.NoError(t, g.Remove(0))
	assert.Equal(t, []float32{1}, positions(g))
}

func TestRotateStops(t *testing.T) {
	g := New(red, green, blue).RotateStops(0.25)
	// the end stops meet at 0.25 and are spread apart, the former end first
	assert.InDeltaSlice(t, []float32{0.25, 0.252, 0.75}, positions(g), 1e-6)
	stops := g.Stops()
	assert.Equal(t, blue, stops[0].Color)
	assert.Equal(t, red, stops[1].Color)
	assert.Equal(t, green, stops[2].Color)
	assert.Equal(t, float32(1), stops[0].OrigPos)

	g.RotateStops(0)
	assert.Equal(t, []float32{0, 0.5, 1}, positions(g))
	c, _ := g.StopColor(2)
	assert.Equal(t, blue, c)

	g.RotateStops(0.5)
	assert.Equal(t, 3, g.Len())
	assert.InDeltaSlice(t, []float32{0.5, 0.502, 1}, positions(g), 1e-6)

	g.RotateStops(-0.5)
	assert.InDeltaSlice(t, []float32{0, 0.5, 0.502}, positions(g), 1e-6)
	stops = g.Stops()
	assert.Equal(t, green, stops[0].Color)
	assert.Equal(t, blue, stops[1].Color)
	assert.Equal(t, red, stops[2].Color)

	// stops meeting near 1 are spread downward
	g.RotateStops(0.9995)
	assert.InDeltaSlice(t, []float32{0.4995, 0.998, 1}, positions(g), 1e-4)

	// the rotated stops survive being inserted again
	assert.Equal(t, 3, NewFromStops(g.Stops()...).Len())
}

func TestRotateAfterPush(t *testing.T) {
	g := New(red, green, blue).RotateStops(0.25).Push(yellow)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, yellow, g.LastColor())

	g.RotateStops(0)
	assert.InDeltaSlice(t, []float32{0, 1.0 / 3, 2.0 / 3, 1}, positions(g), 1e-6)
	var cols []colors.ARGB
	for _, s := range g.Stops() {
		cols = append(cols, s.Color)
	}
	assert.Equal(t, []colors.ARGB{red, green, blue, yellow}, cols)

	require.NoError(t, g.RemoveLast())
	g.RotateStops(0)
	assert.InDeltaSlice(t, []float32{0, 0.5, 1}, positions(g), 1e-6)
}

func TestNonFinitePositions(t *testing.T) {
	nan := float32(math.NaN())
	white := colors.White
	for _, pos := range []float32{nan, math32.Inf(1), math32.Inf(-1)} {
		g := New(red, green, blue).Add(pos, white)
		// the stop at 0 is replaced, the others are kept
		assert.Equal(t, 3, g.Len(), "pos %v", pos)
		assert.Equal(t, []float32{0, 0.5, 1}, positions(g))
		c, _ := g.StopColor(0)
		assert.Equal(t, white, c)
		assert.Equal(t, float32(0), g.Stops()[0].OrigPos)
	}

	g := New(red, green, blue)
	require.NoError(t, g.SetStopPosition(1, nan))
	assert.Equal(t, []float32{0, 1}, positions(g))

	g = NewFromStops(NewStop(0, red), NewStop(nan, green), NewStop(1, blue))
	assert.Equal(t, []float32{0, 1}, positions(g))
	c, _ := g.StopColor(0)
	assert.Equal(t, green, c)
}

func TestAddWraps(t *testing.T) {
	g := New(red, blue).Add(1.25, green)
	assert.Equal(t, []float32{0, 0.25, 1}, positions(g))
	assert.Equal(t, float32(0.25), g.Stops()[1].OrigPos)

	g = New(red, blue).Add(-0.25, green)
	assert.Equal(t, []float32{0, 0.75, 1}, positions(g))

	// Add and SetStopPosition agree
	h := New(red, blue).Add(0.5, green)
	require.NoError(t, h.SetStopPosition(1, -0.25))
	assert.Equal(t, g.Stops(), h.Stops())

	// 1 is kept as the end of the gradient
	g = New(red).Add(1, blue)
	assert.Equal(t, []float32{0, 1}, positions(g))
}

func TestAddStopDefaults(t *testing.T) {
	g := New(red, blue).AddStop(ColorStop{Pos: 0.3, Color: green})
	s := g.Stops()[1]
	assert.Equal(t, float32(0.3), s.OrigPos)
	assert.Equal(t, float32(255), s.Alpha)
	assert.Equal(t, NewStop(0.3, green).Alpha, s.Alpha)
	assert.Equal(t, green, g.Evaluate(0.3))

	// a transparent color keeps its zero alpha
	g = New(red, blue).AddStop(ColorStop{Pos: 0.3, Color: green.WithAlpha(0)})
	assert.Equal(t, float32(0), g.Stops()[1].Alpha)

	g = NewFromStops(ColorStop{Pos: 0.6, Color: yellow}, ColorStop{Pos: 1, Color: blue})
	g.RotateStops(0)
	assert.Equal(t, []float32{0.6, 1}, positions(g))
	assert.Equal(t, yellow, g.Evaluate(0.6))
}

func TestPushSingle(t *testing.T) {
	g := NewFromStops(NewStop(0.5, red))
	g.Push(blue)
	assert.Equal(t, []float32{0, 1}, positions(g))
	// a lone remaining stop is not expanded back
	require.NoError(t, g.RemoveLast())
	assert.Equal(t, []float32{0}, positions(g))
	assert.Equal(t, red, g.LastColor())
}

func TestSpaceSwitch(t *testing.T) {
	g := NewRandomWithStops(6, randx.NewSysRand(9))
	before := positions(g)
	c := g.Evaluate(0.4)
	g.NextSpace()
	assert.Equal(t, spaces.FastLUV, g.Space())
	g.Evaluate(0.4)
	g.PrevSpace().NextEasing().PrevEasing()
	assert.Equal(t, spaces.LUV, g.Space())
	assert.Equal(t, easing.SmoothStep, g.Easing())
	assert.Equal(t, before, positions(g))
	assert.Equal(t, c, g.Evaluate(0.4))

	g.SetSpace(spaces.YUV).NextSpace()
	assert.Equal(t, spaces.RGB, g.Space())
	g.SetEasing(easing.Linear).PrevEasing()
	assert.Equal(t, easing.ExpImpulse, g.Easing())
}

func TestRandomDeterministic(t *testing.T) {
	a := NewRandom(5, randx.NewSysRand(42))
	b := NewRandom(5, randx.NewSysRand(42))
	assert.Equal(t, a.Stops(), b.Stops())
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.Stops(), NewRandom(5, randx.NewSysRand(43)).Stops())

	for seed := range int64(20) {
		g := NewRandomWithStops(8, randx.NewSysRand(seed))
		ps := positions(g)
		assert.LessOrEqual(t, g.Len(), 8)
		assert.Equal(t, float32(0), ps[0])
		assert.Equal(t, float32(1), ps[len(ps)-1])
		assert.IsNonDecreasing(t, ps)
		for _, s := range g.Stops() {
			assert.Equal(t, uint8(255), s.Color.A())
		}
	}
}

func TestRandomNegative(t *testing.T) {
	for _, n := range []int{-1, -10, 0} {
		assert.NotPanics(t, func() {
			assert.Equal(t, 0, NewRandom(n, randx.NewSysRand(1)).Len())
			assert.Equal(t, 0, NewRandomWithStops(n, randx.NewSysRand(1)).Len())
		})
	}
	assert.Equal(t, 1, NewRandomWithStops(1, randx.NewSysRand(1)).Len())
}

func TestMutate(t *testing.T) {
	gray := colors.FromRGBA(100, 100, 100, 200)
	g := New(gray, colors.White).Mutate(10, randx.NewSysRand(1))
	c, _ := g.StopColor(0)
	for _, v := range []uint8{c.R(), c.G(), c.B()} {
		assert.Contains(t, []uint8{90, 110}, v)
	}
	assert.Equal(t, uint8(200), c.A())

	// channels are clamped
	c, _ = g.StopColor(1)
	for _, v := range []uint8{c.R(), c.G(), c.B()} {
		assert.Contains(t, []uint8{245, 255}, v)
	}
}

func TestString(t *testing.T) {
	g := New(red, green.WithAlpha(128))
	s := g.String()
	assert.Contains(t, s, "Gradient LUV SmoothStep")
	assert.Contains(t, s, "Color stops (2)")
	assert.Contains(t, s, "#ff0000")
	assert.Contains(t, s, "#00ff0080")
}

func BenchmarkEvaluate(b *testing.B) {
	for _, s := range []spaces.Spaces{spaces.RGB, spaces.LAB, spaces.FastLAB, spaces.VeryFastLAB, spaces.LUV, spaces.JzAzBz} {
		g := NewRandom(6, randx.NewSysRand(1)).SetSpace(s)
		b.Run(s.String(), func(b *testing.B) {
			for i := range b.N {
				g.Evaluate(float32(i&4095) / 4095)
			}
		})
	}
}

func BenchmarkEvaluateRandom(b *testing.B) {
	g := NewRandom(16, randx.NewSysRand(1))
	pos := make([]float32, 4096)
	rnd := randx.NewSysRand(2)
	for i := range pos {
		pos[i] = rnd.Float32()
	}
	b.ResetTimer()
	for i := range b.N {
		g.Evaluate(pos[i&4095])
	}
}

func TestStops(t *testing.T) {
	opts := cmp.Options{cmpopts.IgnoreUnexported(ColorStop{}), cmpopts.EquateApprox(0, 1e-6)}
	g := New(red, green, blue)
	want := []ColorStop{NewStop(0, red), NewStop(0.5, green), NewStop(1, blue)}
	if d := cmp.Diff(want, g.Stops(), opts); d != "" {
		t.Errorf("Stops() mismatch (-want +got):\n%s", d)
	}

	g.Push(yellow)
	want = []ColorStop{NewStop(0, red), NewStop(1.0/3, green), NewStop(2.0/3, blue), NewStop(1, yellow)}
	if d := cmp.Diff(want, g.Stops(), opts); d != "" {
		t.Errorf("Stops() after Push mismatch (-want +got):\n%s", d)
	}

	// the returned stops are a copy
	st := g.Stops()
	st[0].Pos = 0.9
	assert.Equal(t, float32(0), g.Stops()[0].Pos)
}
