// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Intn(1000), b.Intn(1000))

	var g SysRand
	g.Seed(3)
	assert.NotNil(t, g.Rand)
}

func TestUniformMinMax(t *testing.T) {
	rnd := NewSysRand(1)
	for i := 0; i < 1000; i++ {
		v := UniformMinMax(-2, 3, rnd)
		assert.GreaterOrEqual(t, v, float32(-2))
		assert.Less(t, v, float32(3))
	}
}

func TestGaussianGen(t *testing.T) {
	rnd := NewSysRand(2)
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += GaussianGen(5, 2, rnd)
	}
	assert.InDelta(t, 5, sum/float64(n), 0.1)
}

func TestUnitVector3(t *testing.T) {
	rnd := NewSysRand(3)
	for i := 0; i < 100; i++ {
		x, y, z := UnitVector3(rnd)
		l := math.Sqrt(float64(x*x + y*y + z*z))
		assert.InDelta(t, 1, l, 1e-5)
	}
}

func TestChoose(t *testing.T) {
	rnd := NewSysRand(4)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Choose(items, rnd)] = true
	}
	assert.Len(t, seen, 3)
}
