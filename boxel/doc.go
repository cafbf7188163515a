// Package boxel partitions a fixed point set into a 3-D grid of cubic
// buckets ("boxels") and answers "nearest point not yet linked to me"
// queries against it.
//
// What:
//
//   - Index owns one JunctionBox per input point. A JunctionBox is the point
//     plus the ordered list of points it has been linked to.
//   - Each box lives in exactly one boxel, chosen by integer-dividing its
//     offset from Options.Origin by Options.Side on every axis. Boxes never move.
//   - Nearest scans the box's own boxel, then neighbouring boxels out to
//     Options.SearchRadius whose lower-bound distance can still beat the best
//     candidate, and falls back to an exhaustive scan when the bounded search
//     cannot prove its answer.
//   - Link records a link symmetrically on both boxes.
//
// Why:
//
//   - Closest-pair-first linking needs every box's nearest unlinked neighbour
//     once per round. Bucketing makes that O(1) boxels per query in practice
//     instead of O(N) points.
//
// Complexity:
//
//   - Build:   O(N) time, O(N + Cells³) memory.
//   - Nearest: O(k) where k is the number of points in visited boxels;
//     O(N) on the exhaustive fallback.
//   - Link:    O(1) amortised.
//
// Concurrency:
//
//	Nearest, Box, Boxes, Lookup and Edges only read. Any number of goroutines
//	may call them at once provided no Link call runs at the same time.
//	Link must be serialised by the caller.
//
// Errors:
//
//   - ErrEmpty:       Build called with no points.
//   - ErrBadOptions:  non-positive Side, Cells or SearchRadius.
//   - ErrOutOfDomain: a point lies outside the grid cube.
//   - ErrInvariant:   Link on unknown boxes, a self link or an existing link.
package boxel
