// Package kinship names family relationships over single-parent lineages —
// from raw parent chains to a human-readable label such as
// "Second cousin twice removed".
//
// 🚀 What is kinship?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Ancestor walks: the ordered chain from any person to their root
//		• Coordinate resolution: the (x, y) generation distances to the MRCA
//		• MRCA lookup: the most recent common ancestor of two people
//		• Relationship synthesis: table-backed labels with an algorithmic
//		  generator and memo cache for arbitrarily deep trees
//		• Abbreviation: "Great, great, great grandfather" → "3 x great grandfather"
//
// ✨ Why choose kinship?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit errors, documented concurrency contract
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – bring your own Person type and relationship terminology
//
// Under the hood, everything is organized under three subpackages:
//
//	ancestry/ — the Person contract, ancestor walker, coordinate resolver & MRCA
//	relate/   — relationship tables, label generator, abbreviator, number words
//	lineage/  — deterministic fixture members & chain builders for tests/examples
//
// Quick ASCII example:
//
//	    R
//	   ╱ ╲
//	  A   B
//	  │   │
//	  C   D
//
//	C and D are first cousins; R is their most recent common ancestor.
//
// The tree model is deliberately narrow: each person records at most one
// parent, so a pedigree is a forest of singly-linked chains. Two-parent
// pedigrees, adoption and step relationships are out of scope.
//
//	go get github.com/katalvlaran/kinship
package kinship
