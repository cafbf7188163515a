// Package point defines the immutable 3-D integer Point used throughout
// circuits, together with the line-oriented input format that loads them.
//
// What:
//
//   - Point is a comparable value (X, Y, Z int64); it can be used as a map key.
//   - SquaredDistance is the only metric: (dx² + dy² + dz²), no square roots.
//   - Parse / Read decode the "x,y,z" line format, one point per line.
//
// Input format:
//
//	162,817,812
//	57,618,57
//	-3,0,12
//
// Each line must carry exactly three signed integers separated by commas and
// no surrounding whitespace. Blank lines are ignored. The first malformed line
// aborts reading with a *ParseError naming the line number and its text.
//
// Errors:
//
//   - ErrMalformed: any parse failure (matched via errors.Is on *ParseError).
//   - ErrFieldCount: a line did not split into exactly three fields.
//
// Complexity:
//
//   - SquaredDistance: O(1).
//   - Read: O(L) for L input bytes; memory O(N) for N points.
package point
