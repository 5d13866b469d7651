// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package topology

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Kind is the closed set of matrix shapes.
type Kind int

const (
	// Round is a 12x12 disc.
	Round Kind = iota
	// Hexagonal is a 14x14 hexagon with flat top and bottom edges.
	Hexagonal
	// Triangular is a 16x16 upward-pointing triangle.
	Triangular
	// Custom is a caller-supplied table. It has no built-in layout.
	Custom
)

var kindNames = map[Kind]string{
	Round:      "round",
	Hexagonal:  "hexagonal",
	Triangular: "triangular",
	Custom:     "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind parses the name of a Kind.
func ParseKind(v string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, v) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown matrix kind: %q", v)
}

// Builtin returns the built-in table for k.
//
// Custom has no built-in table; Builtin returns nil for it and for unknown
// kinds.
func Builtin(k Kind) *Table {
	switch k {
	case Round:
		return roundTable
	case Hexagonal:
		return hexagonalTable
	case Triangular:
		return triangularTable
	default:
		return nil
	}
}

// KindFlag is a pflag.Value implementation that stores a Kind.
type KindFlag Kind

var _ pflag.Value = (*KindFlag)(nil)

func (kf *KindFlag) String() string { return Kind(*kf).String() }

// Set implements pflag.Value.
func (kf *KindFlag) Set(v string) error {
	k, err := ParseKind(v)
	if err != nil {
		return err
	}
	*kf = KindFlag(k)
	return nil
}

// Type implements pflag.Value.
func (kf *KindFlag) Type() string { return "topology.Kind" }

// Value returns the Kind held by this flag.
func (kf KindFlag) Value() Kind { return Kind(kf) }

// KindFlagValues returns the list of possible values for a KindFlag.
func KindFlagValues() string {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	opts := make([]string, len(kinds))
	for i, k := range kinds {
		opts[i] = k.String()
	}
	return strings.Join(opts, ", ")
}
