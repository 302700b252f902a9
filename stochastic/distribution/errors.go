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

package distribution

import "errors"

// Error classes reported by the distribution registry and the packages
// building on it. Errors are wrapped with context; test with errors.Is.
var (
	// ErrInvalidParameterCount is returned if a parameter vector does not
	// match the arity of a distribution kind.
	ErrInvalidParameterCount = errors.New("invalid parameter count")

	// ErrInvalidParameterValue is returned if a parameter violates a
	// numeric constraint of a distribution kind.
	ErrInvalidParameterValue = errors.New("invalid parameter value")

	// ErrInvalidArgument is returned for malformed call-site input such as
	// negative sample sizes or mismatching dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownDistributionKind is returned if a kind is not registered.
	ErrUnknownDistributionKind = errors.New("unknown distribution kind")
)
