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

import (
	"fmt"
	"strings"
)

// Kind identifies a family of univariate distributions.
type Kind int

// IDs of distribution families
const (
	UniformID Kind = iota
	NormalID
	LogNormalID
	BetaID
	GumbelID
	TruncNormalID
	TruncGumbelID
	LogitNormalID
	ExponentialID
	TruncExponentialID
	TriangularID

	NumKinds
)

// kindText are the canonical names of the distribution families.
var kindText = map[Kind]string{
	UniformID:          "uniform",
	NormalID:           "normal",
	LogNormalID:        "lognormal",
	BetaID:             "beta",
	GumbelID:           "gumbel",
	TruncNormalID:      "trunc-normal",
	TruncGumbelID:      "trunc-gumbel",
	LogitNormalID:      "logitnormal",
	ExponentialID:      "exponential",
	TruncExponentialID: "trunc-exponential",
	TriangularID:       "triangular",
}

// kindAliases are accepted alternative spellings.
var kindAliases = map[string]Kind{
	"gumbel-max":       GumbelID,
	"trunc-gumbel-max": TruncGumbelID,
	"truncnormal":      TruncNormalID,
	"logit-normal":     LogitNormalID,
	"log-normal":       LogNormalID,
	"triangle":         TriangularID,
}

// truncatedKind maps an unbounded family to its truncated counterpart.
var truncatedKind = map[Kind]Kind{
	NormalID:           TruncNormalID,
	GumbelID:           TruncGumbelID,
	ExponentialID:      TruncExponentialID,
	TruncNormalID:      TruncNormalID,
	TruncGumbelID:      TruncGumbelID,
	TruncExponentialID: TruncExponentialID,
}

// String returns the canonical name of a kind.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsValid checks whether the kind is part of the catalog.
func (k Kind) IsValid() bool {
	return k >= 0 && k < NumKinds
}

// Truncated returns the truncated counterpart of a kind. Truncated kinds
// map to themselves; kinds without a counterpart return false.
func (k Kind) Truncated() (Kind, bool) {
	t, ok := truncatedKind[k]
	return t, ok
}

// ParseKind looks up a kind by its name (case-insensitive). The alias
// "gumbel-max" names the untruncated Gumbel distribution with parameters
// (location, scale); its truncated form with (location, scale, lower,
// upper) is "trunc-gumbel" or "trunc-gumbel-max".
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for k, text := range kindText {
		if text == s {
			return k, nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownDistributionKind, name)
}

// Kinds returns all registered kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
