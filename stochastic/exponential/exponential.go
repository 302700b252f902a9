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

package exponential

import (
	"fmt"
	"math"
)

// Package for the exponential distribution truncated to an interval
// [lower, upper]. The upper bound may be infinite, which yields the
// shifted (untruncated) exponential distribution.

const (
	estimationEps   = 1e-9   // epsilon for bi-section
	approxMaxSteps  = 10000  // maximum number of iterations for finding minimal LSE
	approxInfLambda = 1e-3   // lower bound for searching minimal LSE (unit interval)
	approxSupLambda = 1000.0 // upper bound for searching minimal LSE (unit interval)
	dLseEps         = 1e-6   // epsilon for numerical differentiation of the LSE function
)

// Pdf is the density function of the truncated exponential distribution.
func Pdf(lambda, x, lower, upper float64) float64 {
	return lambda * math.Exp(-lambda*(x-lower)) / -math.Expm1(-lambda*(upper-lower))
}

// Cdf is the cumulative distribution function of the truncated exponential distribution.
func Cdf(lambda, x, lower, upper float64) float64 {
	return math.Expm1(-lambda*(x-lower)) / math.Expm1(-lambda*(upper-lower))
}

// Quantile is the inverse cumulative distribution function of the
// truncated exponential distribution (providing probability p).
func Quantile(lambda, p, lower, upper float64) float64 {
	return lower - math.Log1p(p*math.Expm1(-lambda*(upper-lower)))/lambda
}

// PiecewiseLinearCdf is an approximation of the cumulative distribution
// function on a finite interval via sampling with n+1 points.
func PiecewiseLinearCdf(lambda, lower, upper float64, n int) [][2]float64 {
	// The points are equi-distantly spread, i.e., (upper-lower)/n.
	fn := [][2]float64{}
	for i := 0; i <= n; i++ {
		x := lower + (upper-lower)*float64(i)/float64(n)
		p := Cdf(lambda, x, lower, upper)
		fn = append(fn, [2]float64{x, p})
	}
	return fn
}

// lse is the least square error function for deducing lambda on the unit interval.
func lse(lambda float64, points [][2]float64) float64 {
	err := float64(0.0)
	for i := 0; i < len(points); i++ {
		x := points[i][0]
		p := points[i][1]
		err = err + math.Pow(Cdf(lambda, x, 0.0, 1.0)-p, 2)
	}
	return err
}

// dLSE computes the derivative of the least square error function.
func dLSE(lambda float64, points [][2]float64) float64 {
	errL := lse(lambda-dLseEps, points)
	errR := lse(lambda+dLseEps, points)
	return (errR - errL) / dLseEps
}

// ApproximateLambda performs a bisection algorithm to find the best fitting
// lambda for points (x, F(x)) of a cumulative distribution function on the
// finite interval [lower, upper].
func ApproximateLambda(points [][2]float64, lower, upper float64) (float64, error) {
	if !(lower < upper) || math.IsInf(upper-lower, 0) {
		return 0.0, fmt.Errorf("ApproximateLambda: interval [%v, %v] must be finite and non-empty", lower, upper)
	}
	// map points onto the unit interval
	width := upper - lower
	unit := make([][2]float64, len(points))
	for i, p := range points {
		unit[i] = [2]float64{(p[0] - lower) / width, p[1]}
	}

	// Assumption is that sign of the tangents is in opposite
	// direction for the left and right values of lambda.
	// When left/right values are sufficiently close, the bisection terminates.
	left := approxInfLambda
	right := approxSupLambda
	for i := 0; i < approxMaxSteps; i++ {
		mid := (right + left) / 2.0
		dErr := dLSE(mid, unit)
		// check direction of LSE's tangent
		if dErr > 0.0 {
			right = mid
		} else {
			left = mid
		}
		if math.Abs(right-left) < estimationEps {
			return mid / width, nil
		}
	}
	return 0.0, fmt.Errorf("ApproximateLambda: failed to converge after %v steps", approxMaxSteps)
}
