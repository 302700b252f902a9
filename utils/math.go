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

package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](s, t T) T {
	if s < t {
		return s
	}
	return t
}

func Max[T constraints.Ordered](s, t T) T {
	if s > t {
		return s
	}
	return t
}

// Clamp restricts x to the interval [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// RelativeError returns |got - want| relative to want, or the absolute
// error if want is zero.
func RelativeError[T constraints.Float](got, want T) T {
	d := T(math.Abs(float64(got - want)))
	if want == 0 {
		return d
	}
	return d / T(math.Abs(float64(want)))
}
