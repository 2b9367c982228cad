// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import (
	"math"

	"cogentcore.org/gradients/colors/cie"
)

// JzAzBz and ICtCp work on absolute luminance. sRGB white is mapped
// to the SDR reference white of ITU-R BT.2408.
const sdrWhite = 203 // cd/m²

// SMPTE ST 2084 perceptual quantizer constants
const (
	pqN  = 2610.0 / 16384
	pqM2 = 1.7 * 2523 / 32 // JzAzBz exponent; ICtCp uses pqM2ICtCp
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 128
	pqC3 = 2392.0 / 128

	pqM2ICtCp = 2523.0 / 32
)

// pq applies the perceptual quantizer with exponent m2 to an
// absolute luminance in cd/m², preserving the sign.
func pq(x, m2 float64) float64 {
	xp := math.Pow(math.Abs(x)/10000, pqN)
	return math.Copysign(math.Pow((pqC1+pqC2*xp)/(1+pqC3*xp), m2), x)
}

// pqInverse is the inverse of [pq].
func pqInverse(x, m2 float64) float64 {
	xp := math.Pow(math.Abs(x), 1/m2)
	v := max(xp-pqC1, 0) / (pqC2 - pqC3*xp)
	return math.Copysign(10000*math.Pow(v, 1/pqN), x)
}

// JzAzBz, Safdar et al. 2017
const (
	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	jzLMS = cie.Matrix3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzIAB = cie.Matrix3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
	jzLMSInv = jzLMS.Inverse()
	jzIABInv = jzIAB.Inverse()
)

func rgbToJzAzBz(c Triplet) Triplet {
	x, y, z := cie.SRGBToXYZ(c[0], c[1], c[2])
	x, y, z = x*sdrWhite, y*sdrWhite, z*sdrWhite
	xp := jzB*x - (jzB-1)*z
	yp := jzG*y - (jzG-1)*x
	l, m, s := jzLMS.Mul(xp, yp, z)
	i, az, bz := jzIAB.Mul(pq(l, pqM2), pq(m, pqM2), pq(s, pqM2))
	jz := (1+jzD)*i/(1+jzD*i) - jzD0
	return Triplet{jz, az, bz}
}

func jzazbzToRGB(c Triplet) Triplet {
	jz := c[0] + jzD0
	i := jz / (1 + jzD - jzD*jz)
	lp, mp, sp := jzIABInv.Mul(i, c[1], c[2])
	xp, yp, z := jzLMSInv.Mul(pqInverse(lp, pqM2), pqInverse(mp, pqM2), pqInverse(sp, pqM2))
	x := (xp + (jzB-1)*z) / jzB
	y := (yp + (jzG-1)*x) / jzG
	r, g, b := cie.XYZToSRGB(x/sdrWhite, y/sdrWhite, z/sdrWhite)
	return Triplet{r, g, b}
}

// ICtCp, ITU-R BT.2100
var (
	xyzToBT2020 = cie.Matrix3{
		{1.7166511879712674, -0.35567078377639233, -0.25336628137365974},
		{-0.6666843518324892, 1.6164812366349395, 0.01576854581391113},
		{0.017639857445310783, -0.042770613257808524, 0.9421031212354738},
	}
	ictcpLMS = cie.Matrix3{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	ictcpITP = cie.Matrix3{
		{0.5, 0.5, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}
	bt2020ToXYZ = xyzToBT2020.Inverse()
	ictcpLMSInv = ictcpLMS.Inverse()
	ictcpITPInv = ictcpITP.Inverse()
)

func rgbToICtCp(c Triplet) Triplet {
	r, g, b := xyzToBT2020.Mul(cie.SRGBToXYZ(c[0], c[1], c[2]))
	l, m, s := ictcpLMS.Mul(r*sdrWhite, g*sdrWhite, b*sdrWhite)
	i, ct, cp := ictcpITP.Mul(pq(l, pqM2ICtCp), pq(m, pqM2ICtCp), pq(s, pqM2ICtCp))
	return Triplet{i, ct, cp}
}

func ictcpToRGB(c Triplet) Triplet {
	lp, mp, sp := ictcpITPInv.Mul(c[0], c[1], c[2])
	l, m, s := ictcpLMSInv.Mul(pqInverse(lp, pqM2ICtCp), pqInverse(mp, pqM2ICtCp), pqInverse(sp, pqM2ICtCp))
	x, y, z := bt2020ToXYZ.Mul(l/sdrWhite, m/sdrWhite, s/sdrWhite)
	r, g, b := cie.XYZToSRGB(x, y, z)
	return Triplet{r, g, b}
}
