package unionfind

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutOfRange indicates an ID outside [0, Len()).
var ErrOutOfRange = errors.New("unionfind: id out of range")

// node is one arena slot.
type node struct {
	parent int // -1 for a root
	size   int // members in the set; meaningful only at a root
	depth  int // upper bound on subtree height; used only for balancing
}

// UnionFind is a disjoint-set forest over IDs 0..n-1.
// The zero value is an empty forest; use New to size it.
type UnionFind struct {
	nodes []node
	count int // number of roots
}

// New returns n singleton sets.
// Complexity: O(n).
func New(n int) *UnionFind {
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{parent: -1, size: 1}
	}

	return &UnionFind{nodes: nodes, count: n}
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.nodes) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Check returns ErrOutOfRange if x is not a valid ID.
func (uf *UnionFind) Check(x int) error {
	if x < 0 || x >= len(uf.nodes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(uf.nodes))
	}

	return nil
}

// Find returns the representative of x's set by walking parent links.
// It does not modify the forest.
func (uf *UnionFind) Find(x int) int {
	for uf.nodes[x].parent != -1 {
		x = uf.nodes[x].parent
	}

	return x
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Union merges the sets containing a and b and returns the resulting root.
// merged is false when they were already in one set (a no-op).
//
// Steps:
//  1. Resolve both roots; equal roots → no-op.
//  2. Attach the root with the smaller depth under the other (ties attach b's
//     root under a's).
//  3. Add the attached size into the surviving root and raise its depth to
//     max(depth, attached depth + 1).
func (uf *UnionFind) Union(a, b int) (root int, merged bool) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra, false
	}

	child, parent := rb, ra
	if uf.nodes[ra].depth < uf.nodes[rb].depth {
		child, parent = ra, rb
	}
	c, p := &uf.nodes[child], &uf.nodes[parent]
	c.parent = parent
	p.size += c.size
	p.depth = max(p.depth, c.depth+1)
	uf.count--

	return parent, true
}

// Size returns the number of elements in x's set.
func (uf *UnionFind) Size(x int) int {
	return uf.nodes[uf.Find(x)].size
}

// Sizes returns the size of every set, largest first.
// The sizes always sum to Len().
func (uf *UnionFind) Sizes() []int {
	out := make([]int, 0, uf.count)
	for _, n := range uf.nodes {
		if n.parent == -1 {
			out = append(out, n.size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// Largest returns the size of the biggest set, or 0 for an empty forest.
func (uf *UnionFind) Largest() int {
	best := 0
	for _, n := range uf.nodes {
		if n.parent == -1 && n.size > best {
			best = n.size
		}
	}

	return best
}

// Depth returns the balancing depth recorded at x's root.
func (uf *UnionFind) Depth(x int) int {
	return uf.nodes[uf.Find(x)].depth
}
