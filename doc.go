// Package seqscan is a small toolbox of linear-time sequence and grid
// kernels built around the monotonic-stack scan.
//
// 🚀 What is seqscan?
//
//	A focused, pure-Go library that brings together:
//		• monostack/ — nearest next/previous greater/smaller element scans
//		• topk/      — a bounded top-K priority container (heap-backed)
//		• treewalk/  — iterative, recursion-free binary-tree traversal
//		• gridscan/  — island/component counting over 2D grids
//
// ✨ Why choose seqscan?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every routine is a pure function of its inputs
//   - Pure Go library core – no cgo, no hidden runtime deps
//   - Extensible – functional options and hooks (OnPush, OnPop, OnVisit…)
//
// Everything is organized under four subpackages plus a CLI:
//
//	monostack/ — the monotonic-stack scanner and its variants
//	topk/      — fixed-capacity extreme-keeping container
//	treewalk/  — explicit-stack pre-/in-/post-order traversal
//	gridscan/  — connected components ("islands") on rectangular grids
//	cmd/       — the seqscan command-line harness
//
// Quick taste:
//
//	idx, _ := monostack.NextGreaterIndices([]int64{73, 74, 75, 71, 69, 72, 76, 73})
//	// idx == [1 2 6 5 5 6 -1 -1]
//
//	go get github.com/katalvlaran/seqscan
package main
