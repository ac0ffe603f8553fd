// Package recom samples districting plans of population graphs with the
// recombination (ReCom) Markov chain and summarizes the partisan outcomes of
// the resulting ensemble.
//
// What is in the box?
//
//	A small stack of packages, each usable on its own:
//		• core        - immutable population graph + Builder, subgraph views
//		• gridgraph   - lattices and voter layouts (rook or queen adjacency)
//		• bfs, dfs    - contiguity checks, components, post-order traversal
//		• prim_kruskal - random spanning trees (Kruskal or Prim on random weights)
//		• partition   - district assignments with incrementally updated updaters
//		• metrics     - seats, mean-median, efficiency gap
//		• constraints - contiguity, population balance, district count
//		• proposals   - ReCom and single-node flip
//		• accept      - always-accept and Metropolis rules
//		• chain       - the propose → validate → accept driver
//		• ensemble    - parallel independent chains and their summary
//		• config      - YAML configuration of the recom command
//
// Quick ASCII example (a 2×2 plan with two districts):
//
//	    0───1
//	    │   │
//	    0───1
//
// ReCom picks a cut edge such as the top one, merges districts 0 and 1,
// draws a random spanning tree of the union and cuts one tree edge so that
// both halves are population-balanced.
//
// Everything random takes an explicit *rand.Rand, so a seed reproduces a run
// exactly, including parallel ensembles.
//
//	go run ./cmd/recom run --steps 10000 --chains 4
package recom
