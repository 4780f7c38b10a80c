package huffcode

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  Nodes
// are immutable once constructed, and each Internal exclusively owns its two
// children.
type Node interface {
	// Frequency returns the number of occurrences covered by this subtree.
	Frequency() uint64

	// IsLeaf returns true iff the node is a *Leaf.
	IsLeaf() bool

	node()
}

// Leaf is a tree node representing exactly one symbol.
type Leaf struct {
	symbol Symbol
	freq   uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, freq uint64) *Leaf {
	assert.Assertf(symbol.IsValid(), "symbol %d outside alphabet", symbol)
	return &Leaf{symbol: symbol, freq: freq}
}

// Symbol returns the leaf's symbol.
func (n *Leaf) Symbol() Symbol { return n.symbol }

// Frequency returns the symbol's frequency.
func (n *Leaf) Frequency() uint64 { return n.freq }

// IsLeaf returns true.
func (n *Leaf) IsLeaf() bool { return true }

func (*Leaf) node() {}

// Internal is a tree node representing the merge of two subtrees.
type Internal struct {
	freq  uint64
	left  Node
	right Node
}

// NewInternal constructs an Internal node that takes ownership of left and
// right.  Its frequency is the sum of theirs.
func NewInternal(left Node, right Node) *Internal {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	a, b := left.Frequency(), right.Frequency()
	assert.Assertf(a <= math.MaxUint64-b, "frequency overflow: %d + %d", a, b)
	return &Internal{freq: a + b, left: left, right: right}
}

// Left returns the child reached by a 0 bit.
func (n *Internal) Left() Node { return n.left }

// Right returns the child reached by a 1 bit.
func (n *Internal) Right() Node { return n.right }

// Frequency returns the combined frequency of both children.
func (n *Internal) Frequency() uint64 { return n.freq }

// IsLeaf returns false.
func (n *Internal) IsLeaf() bool { return false }

func (*Internal) node() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Depth returns the length of the longest root-to-leaf path.  A nil tree and
// a lone leaf both have depth 0.
func Depth(n Node) int {
	in, ok := n.(*Internal)
	if !ok {
		return 0
	}
	l, r := Depth(in.left), Depth(in.right)
	if l < r {
		l = r
	}
	return l + 1
}

// CountLeaves returns the number of leaves in the tree.
func CountLeaves(n Node) int {
	switch x := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return CountLeaves(x.left) + CountLeaves(x.right)
	default:
		return 0
	}
}
