package point

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z int64
}

// New returns the point (x, y, z).
func New(x, y, z int64) Point {
	return Point{X: x, Y: y, Z: z}
}

// SquaredDistance returns the squared Euclidean distance between p and q.
// It is symmetric and zero only for equal points.
// Complexity: O(1).
func (p Point) SquaredDistance(q Point) int64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z

	return dx*dx + dy*dy + dz*dz
}

// Axis returns the coordinate on axis 0 (X), 1 (Y) or 2 (Z).
func (p Point) Axis(i int) int64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// String formats p in the input line format "x,y,z".
func (p Point) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(p.X, 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(p.Y, 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(p.Z, 10))

	return b.String()
}

// Parse decodes a single "x,y,z" line.
// Returns a *ParseError (Line == 0) wrapping ErrFieldCount or the strconv error.
func Parse(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, &ParseError{Text: line, Err: ErrFieldCount}
	}

	var xyz [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Point{}, &ParseError{Text: line, Err: err}
		}
		xyz[i] = v
	}

	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// Read decodes every line of r into a Point, in input order.
//
// Steps:
//  1. Scan r line by line (bufio.Scanner).
//  2. Skip blank lines.
//  3. Parse each remaining line; on failure return a *ParseError with the
//     1-based line number and stop.
//
// Read errors from r are returned unchanged.
func Read(r io.Reader) ([]Point, error) {
	var (
		points []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if text == "" {
			continue
		}
		p, err := Parse(text)
		if err != nil {
			pe := err.(*ParseError)
			pe.Line = lineNo

			return nil, pe
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
