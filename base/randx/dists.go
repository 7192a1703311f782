// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math"

// UniformMinMax returns a uniform random number in [min, max).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformMinMax(min, max float32, randOpt ...Rand) float32 {
	return min + (max-min)*pick(randOpt).Float32()
}

// GaussianGen returns gaussian (normal) random number with given
// mean and sigma standard deviation.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func GaussianGen(mean, sigma float64, randOpt ...Rand) float64 {
	return mean + sigma*pick(randOpt).NormFloat64()
}

// UnitVector3 returns the components of a random direction, uniformly
// distributed on the unit sphere, from three gaussian samples.
func UnitVector3(randOpt ...Rand) (x, y, z float32) {
	rnd := pick(randOpt)
	for {
		gx, gy, gz := rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64()
		l2 := gx*gx + gy*gy + gz*gz
		if l2 < 1e-12 {
			continue
		}
		il := 1 / math.Sqrt(l2)
		return float32(gx * il), float32(gy * il), float32(gz * il)
	}
}

// Choose returns a uniformly random element of items, which must not be empty.
func Choose[T any](items []T, randOpt ...Rand) T {
	return items[pick(randOpt).Intn(len(items))]
}

func pick(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}
