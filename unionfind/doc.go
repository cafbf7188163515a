// Package unionfind provides a disjoint-set forest over dense integer IDs,
// used to track which junction boxes belong to the same circuit.
//
// What:
//
//   - Nodes live in a slice arena addressed by ID; a parent of -1 marks a root.
//   - Union attaches the shallower root under the deeper one (union by rank)
//     and accumulates set sizes on the surviving root.
//   - Find walks parent links to the root without path compression, so Find
//     never writes and the structure is trivially safe to read concurrently.
//
// Why no path compression:
//
//	Union by rank alone bounds every tree at O(log N) height, and the number
//	of Find calls is bounded by the number of linking rounds. Keeping Find
//	read-only is worth more here than shaving the log factor.
//
// Complexity:
//
//   - New:         O(N) time and memory.
//   - Find, Union: O(log N).
//   - Sizes:       O(N log N) (collect roots, sort descending).
//
// Errors:
//
//   - ErrOutOfRange: Check was given an ID outside [0, Len()).
//     Find and Union index the arena directly and panic on such IDs.
package unionfind
