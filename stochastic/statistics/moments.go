// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package statistics

import (
	"fmt"
	"math"
)

// Moments accumulates the first four central moments of a stream of
// values in a single pass.
type Moments struct {
	count uint64
	min   float64
	max   float64

	// Kahan sum
	ksum float64
	c    float64

	m1 float64
	m2 float64
	m3 float64
	m4 float64
}

// NewMoments creates an empty accumulator.
func NewMoments() *Moments {
	return &Moments{}
}

func (s *Moments) ifEmpty(empty, notEmpty float64) float64 {
	if s.count != 0 {
		return notEmpty
	}
	return empty
}

// Update adds a value.
func (s *Moments) Update(x float64) {
	prevN, n := float64(s.count), float64(s.count+1)

	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN

	t := delta * deltaN * prevN
	s.m1 += deltaN
	s.m4 += t*deltaN2*(n*n-3*n+3) + (6 * deltaN2 * s.m2) - (4 * deltaN * s.m3)
	s.m3 += t*deltaN*(n-2) - (3 * deltaN * s.m2)
	s.m2 += t

	y := x - s.c
	z := s.ksum + y
	s.c = (z - s.ksum) - y
	s.ksum = z

	if s.count == 0 {
		s.min, s.max = x, x
	} else {
		s.min = math.Min(s.min, x)
		s.max = math.Max(s.max, x)
	}
	s.count++
}

// UpdateAll adds all values.
func (s *Moments) UpdateAll(xs []float64) {
	for _, x := range xs {
		s.Update(x)
	}
}

func (s *Moments) Count() uint64 {
	return s.count
}

func (s *Moments) Sum() float64 {
	return s.ksum
}

func (s *Moments) Mean() float64 {
	return s.ifEmpty(math.NaN(), s.m1)
}

// Variance returns the population variance.
func (s *Moments) Variance() float64 {
	return s.ifEmpty(math.NaN(), s.m2/float64(s.count))
}

func (s *Moments) StandardDeviation() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Moments) Skewness() float64 {
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// Kurtosis returns the excess kurtosis.
func (s *Moments) Kurtosis() float64 {
	return float64(s.count)*s.m4/(s.m2*s.m2) - 3.0
}

func (s *Moments) Min() float64 {
	return s.ifEmpty(math.NaN(), s.min)
}

func (s *Moments) Max() float64 {
	return s.ifEmpty(math.NaN(), s.max)
}

// String prints the count, mean, standard deviation, and range.
func (s *Moments) String() string {
	return fmt.Sprintf("n=%d mean=%v stddev=%v min=%v max=%v", s.count, s.Mean(), s.StandardDeviation(), s.Min(), s.Max())
}
