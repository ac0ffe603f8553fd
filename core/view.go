// File: view.go
// Role: Non-mutating subgraph views over an immutable Graph.
// Determinism:
//   - Local indices follow the order of the nodes slice handed to Induce;
//     subgraph edges are emitted by ascending local endpoint, then ascending global edge index.

package core

// SubEdge is one edge of a Subgraph expressed in local indices.
type SubEdge struct {
	U, V int // local endpoint indices, U < V
	Edge int // global edge index in the parent Graph
}

// Subgraph is the subgraph induced by a node subset, re-indexed 0..n-1.
type Subgraph struct {
	parent   *Graph
	nodes    []int // local → global
	local    []int // global → local, -1 when outside
	edges    []SubEdge
	incident [][]int // local node → positions in edges
}

// Induce returns the subgraph induced by the given global node indices: the
// result contains exactly those nodes and every edge with both endpoints among
// them. Duplicate indices are ignored after their first occurrence. The input
// graph is not mutated.
//
// Complexity: O(V + Σdeg(nodes)).
func Induce(g *Graph, nodes []int) *Subgraph {
	s := &Subgraph{
		parent: g,
		nodes:  make([]int, 0, len(nodes)),
		local:  make([]int, len(g.vertices)),
	}
	for i := range s.local {
		s.local[i] = -1
	}
	for _, n := range nodes {
		if s.local[n] >= 0 {
			continue
		}
		s.local[n] = len(s.nodes)
		s.nodes = append(s.nodes, n)
	}

	s.incident = make([][]int, len(s.nodes))
	for lu, gu := range s.nodes {
		for j, ei := range g.incident[gu] {
			lv := s.local[g.neighbors[gu][j]]
			// Each undirected edge is emitted once, from its lower local endpoint.
			if lv < 0 || lv < lu {
				continue
			}
			pos := len(s.edges)
			s.edges = append(s.edges, SubEdge{U: lu, V: lv, Edge: ei})
			s.incident[lu] = append(s.incident[lu], pos)
			s.incident[lv] = append(s.incident[lv], pos)
		}
	}

	return s
}

// Graph returns the parent graph.
func (s *Subgraph) Graph() *Graph { return s.parent }

// Len returns the number of nodes in the subgraph.
func (s *Subgraph) Len() int { return len(s.nodes) }

// Global maps a local index to the parent's dense index.
func (s *Subgraph) Global(local int) int { return s.nodes[local] }

// Local maps a parent dense index to its local index.
func (s *Subgraph) Local(global int) (int, bool) {
	if global < 0 || global >= len(s.local) || s.local[global] < 0 {
		return 0, false
	}

	return s.local[global], true
}

// Nodes returns the global indices of the subgraph nodes in local order.
// The slice is owned by the Subgraph.
func (s *Subgraph) Nodes() []int { return s.nodes }

// EdgeCount returns the number of subgraph edges.
func (s *Subgraph) EdgeCount() int { return len(s.edges) }

// Edges returns the subgraph edges. The slice is owned by the Subgraph.
func (s *Subgraph) Edges() []SubEdge { return s.edges }

// Incident returns the positions (into Edges) of edges touching local node i.
func (s *Subgraph) Incident(i int) []int { return s.incident[i] }

// Population returns the population of local node i.
func (s *Subgraph) Population(i int) int64 { return s.parent.vertices[s.nodes[i]].Population }
