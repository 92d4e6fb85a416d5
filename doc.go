// Package bimatch is your in-memory toolkit for bipartite graphs —
// maximum matchings, minimum vertex covers and envy-free allocations.
//
// 🚀 What is bimatch?
//
//	A thread-safe library built around one engine and its derivatives:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Bipartition: two-coloring, validation & explicit side hints
//		• Maximum matching: Hopcroft–Karp in O(E·√V)
//		• Minimum vertex cover: the König construction
//		• Alternating paths: reachability with matched/unmatched parity
//		• Envy-free matchings: good/bad partition, maximum & min-weight variants
//		• Assignment: rectangular minimum-cost solver over dense matrices
//
// ✨ Why choose bimatch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted scan order, same input → same matching
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every derivative accepts a precomputed matching
//
// Under the hood, everything is organized under four subpackages:
//
//	assignment/ — rectangular minimum-cost assignment over float64 matrices
//	bipartite/  — two-coloring, bipartiteness checks & side inference
//	core/       — fundamental Graph type & thread-safe primitives
//	matching/   — Hopcroft–Karp, vertex cover, alternating paths, envy-free
//
// Quick ASCII example:
//
//	    0───2
//	     ╲ ╱
//	      ╳
//	     ╱ ╲
//	    1───3
//
//	K(2,2): both left nodes matched, cover size two.
//
// Dive into the package docs for full examples and the exact guarantees
// each operation makes about determinism and error handling.
//
//	go get github.com/katalvlaran/bimatch
package bimatch
