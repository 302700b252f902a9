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

// Package statistics summarises samples drawn from probabilistic inputs
// and compares them with the analytical distributions.
package statistics

import "errors"

// NumECDFPoints is the number of points kept on a compressed ECDF.
const NumECDFPoints = 100

// DefaultBins is the default number of histogram and test bins.
const DefaultBins = 50

// ErrEmptySample is returned for statistics of an empty sample.
var ErrEmptySample = errors.New("empty sample")

// ErrTooFewBins is returned for a binning with less than two bins.
var ErrTooFewBins = errors.New("at least two bins are required")
