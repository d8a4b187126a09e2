// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice builds the site/bond graph of a periodically
// repeated crystal unit cell: the adjacency that pairwise Hamiltonians
// and the Wolff integrator read from.
package lattice

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/odarbelaeze/vegas/hamiltonian"
)

// Edge is one bond of the lattice, identified by the index of its two
// endpoint sites.
type Edge struct {
	Source, Target int
}

// Lattice is an expanded, graph-backed crystal: a fixed number of
// sites and the nearest-neighbor bonds between them. wrapX/Y/Z record,
// per bond, whether it crosses a periodic image along that axis, so
// DropX/DropY/DropZ can remove exactly those bonds.
type Lattice struct {
	graph          *simple.WeightedUndirectedGraph
	n              int
	wrapX, wrapY, wrapZ map[Edge]bool
}

// Sites returns the number of sites in the lattice.
func (l *Lattice) Sites() int {
	return l.n
}

// Vertices returns every bond of the lattice as a (source, target)
// pair. Each undirected bond appears exactly once.
func (l *Lattice) Vertices() []Edge {
	edges := make([]Edge, 0, len(l.graph.Edges()))
	for _, e := range l.graph.Edges() {
		edges = append(edges, Edge{Source: int(e.From().ID()), Target: int(e.To().ID())})
	}
	return edges
}

// Neighbors returns the site indices adjacent to site, satisfying the
// adjacency contract the Wolff integrator depends on.
func (l *Lattice) Neighbors(site int) []int {
	from := l.graph.Node(int64(site))
	neighbors := l.graph.From(from)
	out := make([]int, 0, len(neighbors))
	for _, nd := range neighbors {
		out = append(out, int(nd.ID()))
	}
	return out
}

// Couplings returns every bond as an exchange coupling of constant j,
// ready to hand to hamiltonian.NewExchange.
func (l *Lattice) Couplings(j float64) []hamiltonian.Coupling {
	vertices := l.Vertices()
	couplings := make([]hamiltonian.Coupling, 0, len(vertices))
	for _, e := range vertices {
		couplings = append(couplings, hamiltonian.Coupling{A: e.Source, B: e.Target, J: j})
	}
	return couplings
}

// addBond records an undirected unit-weight bond between a and b,
// skipping self-bonds and duplicates, and tags it as wrapping along
// whichever axes the caller says it crosses a periodic image on.
func (l *Lattice) addBond(a, b int, wrapX, wrapY, wrapZ bool) {
	if a == b {
		return
	}
	u, v := l.graph.Node(int64(a)), l.graph.Node(int64(b))
	if l.graph.HasEdgeBetween(u, v) {
		return
	}
	l.graph.SetWeightedEdge(l.graph.NewWeightedEdge(u, v, 1))
	key := canonical(a, b)
	if wrapX {
		l.wrapX[key] = true
	}
	if wrapY {
		l.wrapY[key] = true
	}
	if wrapZ {
		l.wrapZ[key] = true
	}
}

func canonical(a, b int) Edge {
	if a < b {
		return Edge{Source: a, Target: b}
	}
	return Edge{Source: b, Target: a}
}

// dropWrapping removes every bond tagged as wrapping on the given
// axis's map, opening the boundary along that direction.
func (l *Lattice) dropWrapping(wraps map[Edge]bool) {
	for key := range wraps {
		u, v := l.graph.Node(int64(key.Source)), l.graph.Node(int64(key.Target))
		if e := l.graph.Edge(u, v); e != nil {
			l.graph.RemoveEdge(e)
		}
	}
}

// DropX removes every bond that wraps across the x-axis periodic
// boundary, leaving an open boundary in that direction.
func (l *Lattice) DropX() *Lattice {
	l.dropWrapping(l.wrapX)
	return l
}

// DropY removes every bond that wraps across the y-axis periodic
// boundary.
func (l *Lattice) DropY() *Lattice {
	l.dropWrapping(l.wrapY)
	return l
}

// DropZ removes every bond that wraps across the z-axis periodic
// boundary.
func (l *Lattice) DropZ() *Lattice {
	l.dropWrapping(l.wrapZ)
	return l
}

func newGraph(n int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simpleNode(i))
	}
	return g
}

// simpleNode is a graph.Node with a fixed ID, used to pre-seed the
// graph with exactly n nodes numbered 0..n-1.
type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

var _ graph.Node = simpleNode(0)
