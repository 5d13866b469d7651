// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package geometry

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Strategy selects how a Mapper stores its geometry.
type Strategy int

const (
	// Sparse stores a compacted list of active entries. Lookups are O(n).
	Sparse Strategy = iota
	// Dense retains the full topology table. Lookups are O(1).
	Dense
)

// DefaultStrategy is the Strategy used when none is specified.
const DefaultStrategy = Sparse

func (s Strategy) String() string {
	switch s {
	case Sparse:
		return "sparse"
	case Dense:
		return "dense"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a Strategy name.
func ParseStrategy(v string) (Strategy, error) {
	for _, s := range []Strategy{Sparse, Dense} {
		if strings.EqualFold(s.String(), v) {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown geometry strategy: %q", v)
}

// StrategyFlag is a pflag.Value implementation that stores a Strategy.
type StrategyFlag Strategy

var _ pflag.Value = (*StrategyFlag)(nil)

func (sf *StrategyFlag) String() string { return Strategy(*sf).String() }

// Set implements pflag.Value.
func (sf *StrategyFlag) Set(v string) error {
	s, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*sf = StrategyFlag(s)
	return nil
}

// Type implements pflag.Value.
func (sf *StrategyFlag) Type() string { return "geometry.Strategy" }

// Value returns the Strategy held by this flag.
func (sf StrategyFlag) Value() Strategy { return Strategy(sf) }
