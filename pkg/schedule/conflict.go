package schedule

import (
	"github.com/matzehuels/omeganet/pkg/network"
	"github.com/matzehuels/omeganet/pkg/perm"
)

// Graph is the conflict graph over the transfers of one permutation.
// Nodes are transfers in ascending source order; an edge joins two
// transfers that require incompatible settings at a shared switch.
// Graph is immutable after construction.
type Graph struct {
	transfers []perm.Transfer
	paths     []network.Path
	adj       [][]bool
	edgeCount int
}

// BuildConflictGraph routes every transfer once and derives the conflict
// relation. The transfer order is preserved; callers pass the ascending
// source order produced by perm.Permutation.Transfers.
func BuildConflictGraph(transfers []perm.Transfer) *Graph {
	g := &Graph{
		transfers: transfers,
		paths:     make([]network.Path, len(transfers)),
		adj:       make([][]bool, len(transfers)),
	}
	for i, t := range transfers {
		g.paths[i] = network.Route(t.Src, t.Dst)
		g.adj[i] = make([]bool, len(transfers))
	}
	for i := range transfers {
		for j := i + 1; j < len(transfers); j++ {
			if pathsConflict(g.paths[i], g.paths[j]) {
				g.adj[i][j] = true
				g.adj[j][i] = true
				g.edgeCount++
			}
		}
	}
	return g
}

// pathsConflict reports whether two routed paths need differing settings
// at some shared (stage, switch).
func pathsConflict(a, b network.Path) bool {
	for stage := 0; stage < network.Stages; stage++ {
		if a[stage].Switch == b[stage].Switch && a[stage].Setting != b[stage].Setting {
			return true
		}
	}
	return false
}

// Size returns the number of transfers in the graph.
func (g *Graph) Size() int { return len(g.transfers) }

// EdgeCount returns the number of conflict edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Transfer returns the i-th transfer.
func (g *Graph) Transfer(i int) perm.Transfer { return g.transfers[i] }

// Path returns the routed path of the i-th transfer.
func (g *Graph) Path(i int) network.Path { return g.paths[i] }

// Conflicts reports whether transfers i and j carry a conflict edge.
func (g *Graph) Conflicts(i, j int) bool { return g.adj[i][j] }
