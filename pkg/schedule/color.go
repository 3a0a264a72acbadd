package schedule

import (
	"github.com/matzehuels/omeganet/pkg/errors"
	"github.com/matzehuels/omeganet/pkg/network"
	"github.com/matzehuels/omeganet/pkg/perm"
)

func internalf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInternal, format, args...)
}

// Schedule assigns every transfer of a conflict graph to a slot such that
// no two conflicting transfers share one, using the minimum possible
// number of slots.
type Schedule struct {
	graph *Graph
	slots []int // slot per node, parallel to graph transfers
	count int   // number of distinct slots used
}

// Minimum computes a minimum proper slot assignment for g.
//
// It tries candidate slot counts k = 1, 2, ... and accepts the first k
// admitting a proper assignment. For each k the search is a backtracking
// walk over nodes in graph order with slots tried in ascending numeric
// order, so the result is fully deterministic for a given graph. An empty
// graph yields an empty schedule with zero slots.
func Minimum(g *Graph) Schedule {
	n := g.Size()
	if n == 0 {
		return Schedule{graph: g}
	}
	for k := 1; k <= n; k++ {
		if slots := properAssignment(g, k); slots != nil {
			return Schedule{graph: g, slots: slots, count: k}
		}
	}
	// One slot per transfer is always proper, so the loop cannot fall
	// through for a well-formed graph.
	return Schedule{graph: g, slots: identitySlots(n), count: n}
}

// properAssignment searches for any proper assignment with k slots.
// The backtracking uses an explicit cursor over the slot array instead of
// recursion, so behavior does not depend on call-stack depth.
func properAssignment(g *Graph, k int) []int {
	n := g.Size()
	slots := make([]int, n)
	for i := range slots {
		slots[i] = -1
	}

	idx := 0
	for idx >= 0 && idx < n {
		next := slots[idx] + 1 // resume after the slot tried last
		slots[idx] = -1
		assigned := false
		for c := next; c < k; c++ {
			if slotFits(g, slots, idx, c) {
				slots[idx] = c
				assigned = true
				break
			}
		}
		if assigned {
			idx++
		} else {
			idx--
		}
	}

	if idx < 0 {
		return nil
	}
	return slots
}

// slotFits reports whether node idx can take slot c given the assignments
// of the nodes before it.
func slotFits(g *Graph, slots []int, idx, c int) bool {
	for j := 0; j < idx; j++ {
		if g.Conflicts(idx, j) && slots[j] == c {
			return false
		}
	}
	return true
}

func identitySlots(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Slots returns the number of distinct slots the assignment uses.
// Zero for an empty schedule.
func (s Schedule) Slots() int { return s.count }

// MinimumCycles returns the user-facing minimum transfer-cycle count:
// the slot count, with the all-fixed-point case reported as 1 by
// convention.
func (s Schedule) MinimumCycles() int {
	if s.count == 0 {
		return 1
	}
	return s.count
}

// Blocking reports whether the permutation needs more than one transfer
// cycle. Equivalent to the conflict graph having at least one edge.
func (s Schedule) Blocking() bool { return s.MinimumCycles() > 1 }

// SlotOf returns the slot assigned to the i-th transfer.
func (s Schedule) SlotOf(i int) int { return s.slots[i] }

// InSlot returns the transfers assigned to slot c, in graph (ascending
// source) order.
func (s Schedule) InSlot(c int) []perm.Transfer {
	var ts []perm.Transfer
	for i, slot := range s.slots {
		if slot == c {
			ts = append(ts, s.graph.Transfer(i))
		}
	}
	return ts
}

// Grid materializes the per-switch settings for slot c: Straight or Cross
// where a transfer in the slot occupies the switch, Unused elsewhere.
//
// A proper schedule can never demand two different settings for one switch
// in one slot, and a 2×2 switch has only two inputs; either condition
// failing means a routing or scheduling bug, reported as an internal
// error, never a user error.
func (s Schedule) Grid(c int) ([network.Stages][network.Switches]network.Setting, error) {
	var grid [network.Stages][network.Switches]network.Setting
	var users [network.Stages][network.Switches]int

	for i, slot := range s.slots {
		if slot != c {
			continue
		}
		for _, hop := range s.graph.Path(i) {
			cur := grid[hop.Stage][hop.Switch]
			if cur != network.Unused && cur != hop.Setting {
				return grid, internalf("slot %d: switch %d/%d set to both %v and %v",
					c, hop.Stage, hop.Switch, cur, hop.Setting)
			}
			if users[hop.Stage][hop.Switch] >= 2 {
				return grid, internalf("slot %d: switch %d/%d used by more than two transfers",
					c, hop.Stage, hop.Switch)
			}
			grid[hop.Stage][hop.Switch] = hop.Setting
			users[hop.Stage][hop.Switch]++
		}
	}
	return grid, nil
}
