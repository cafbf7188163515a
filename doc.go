// Package circuits links junction boxes in 3-D integer space closest-pair
// first and tracks the circuits they form.
//
// 🚀 What is circuits?
//
//	A small engine built from four pieces:
//		• point     – the immutable Point and the "x,y,z" line input format
//		• boxel     – a cubic bucket grid with pruned nearest-unlinked search
//		• unionfind – a disjoint-set arena with union by rank and size tracking
//		• circuit   – the round loop: parallel search, reduce, link, union
//
//	plus progress (round observers), config (YAML) and cmd/circuits (CLI).
//
// ✨ Two questions it answers:
//
//   - Bounded: after R shortest links, what is the product of the three
//     largest circuit sizes?
//   - Full: which link first joins every box into one circuit, and what is
//     the product of its two X coordinates?
//
// Quick ASCII example:
//
//	(0,0,0)─1─(1,0,0)────────9801────────(100,0,0)
//
// Round 1 links the close pair, round 2 joins the far box through (1,0,0);
// the full answer is 1·100 = 100.
//
//	go run ./cmd/circuits -input boxes.txt -mode both
package circuits
