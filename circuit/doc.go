// Package circuit links junction boxes closest-pair-first and tracks the
// circuits (connected components) they form.
//
// What & Why
//
//   - Each round finds, over every junction box, the nearest box it is not yet
//     linked to; the globally closest such pair is linked and its two circuits
//     merged. This is Kruskal's algorithm on the complete Euclidean graph,
//     driven lazily by a spatial index instead of a pre-sorted edge list.
//
//   - Two stopping policies are provided:
//
//   - ModeBounded: run a fixed number of rounds, then recompute the circuits
//     from scratch over every recorded link and report the product of the
//     three largest circuit sizes.
//
//   - ModeFull: run until one circuit spans every box and report the product
//     of the X coordinates of the two boxes joined by the final link.
//
// Round structure
//
//  1. Map: the box IDs are split into Workers contiguous ranges searched in
//     parallel (errgroup). Workers only read the index.
//  2. Reduce: after the join, the per-worker winners are folded into the single
//     closest pair by the total order (distance, lower ID, higher ID).
//  3. Mutate: the pair is linked in the index and unioned, on the calling
//     goroutine, strictly after every worker has returned.
//
// Determinism
//
//	The tie-break above makes every build reproducible regardless of worker
//	count or scheduling.
//
// Errors
//
//   - ErrNilIndex:    NewBuilder called without an index.
//   - ErrNoCandidate: a round found no eligible pair (fewer than two boxes, or
//     every pair already linked).
//   - ErrInvariant:   a link was rejected by the index, or ModeFull failed to
//     converge within the number of possible merges.
//   - ErrUnknownMode: Compute was given a mode it does not know.
//
// Complexity
//
//	One round costs O(N·k / W) for N boxes, W workers and k points visited per
//	nearest search (O(1) boxels on typical inputs).
package circuit
