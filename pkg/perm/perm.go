package perm

import (
	"fmt"
	"strings"

	"github.com/matzehuels/omeganet/pkg/errors"
	"github.com/matzehuels/omeganet/pkg/network"
)

// Transfer is one source→destination movement implied by a non-fixed point
// of a permutation. Transfers are immutable values.
type Transfer struct {
	Src int
	Dst int
}

// String returns the report form "src->dst".
func (t Transfer) String() string {
	return fmt.Sprintf("%d->%d", t.Src, t.Dst)
}

// Permutation is a total bijective mapping over the network address space.
// The zero value is not usable; construct with [FromCycles], [Parse], or
// [Identity].
type Permutation struct {
	mapping [network.Size]int
}

// Identity returns the permutation that fixes every address.
func Identity() Permutation {
	var p Permutation
	for a := range p.mapping {
		p.mapping[a] = a
	}
	return p
}

// FromCycles constructs a permutation from a list of disjoint cycles.
//
// It fails with a structured error when a cycle is empty
// (ErrCodeEmptyCycle), an address lies outside the address space
// (ErrCodeInvalidAddress), or an address appears more than once across or
// within cycles (ErrCodeDuplicateAddress) — each of these would break
// bijectivity. Addresses absent from all cycles become fixed points.
func FromCycles(cycles [][]int) (Permutation, error) {
	p := Identity()
	var seen [network.Size]bool

	for i, cycle := range cycles {
		if len(cycle) == 0 {
			return Permutation{}, errors.New(errors.ErrCodeEmptyCycle, "cycle %d is empty", i+1)
		}
		for _, a := range cycle {
			if !network.ValidAddress(a) {
				return Permutation{}, errors.New(errors.ErrCodeInvalidAddress,
					"address %d out of range [0,%d]", a, network.Size-1)
			}
			if seen[a] {
				return Permutation{}, errors.New(errors.ErrCodeDuplicateAddress,
					"address %d appears more than once", a)
			}
			seen[a] = true
		}
		for j, a := range cycle {
			p.mapping[a] = cycle[(j+1)%len(cycle)]
		}
	}
	return p, nil
}

// Dest returns the address that a maps to.
// Addresses outside the address space map to themselves.
func (p Permutation) Dest(a int) int {
	if !network.ValidAddress(a) {
		return a
	}
	return p.mapping[a]
}

// IsIdentity reports whether every address is a fixed point.
func (p Permutation) IsIdentity() bool {
	for a, d := range p.mapping {
		if a != d {
			return false
		}
	}
	return true
}

// Transfers returns the non-fixed-point pairs of the permutation, ordered
// ascending by source address. The identity permutation yields none.
func (p Permutation) Transfers() []Transfer {
	var ts []Transfer
	for a, d := range p.mapping {
		if a != d {
			ts = append(ts, Transfer{Src: a, Dst: d})
		}
	}
	return ts
}

// String renders the permutation in canonical cycle notation: each
// non-trivial cycle rotated to start at its smallest member, cycles ordered
// by that member, fixed points omitted. The identity renders as "()".
func (p Permutation) String() string {
	var done [network.Size]bool
	var cycles []string

	for start := 0; start < network.Size; start++ {
		if done[start] || p.mapping[start] == start {
			continue
		}
		var b strings.Builder
		b.WriteByte('(')
		for a := start; ; {
			done[a] = true
			fmt.Fprintf(&b, "%d", a)
			a = p.mapping[a]
			if a == start {
				break
			}
			b.WriteByte(' ')
		}
		b.WriteByte(')')
		cycles = append(cycles, b.String())
	}

	if len(cycles) == 0 {
		return "()"
	}
	return strings.Join(cycles, " ")
}
