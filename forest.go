package huffcode

import (
	"github.com/chronos-tachyon/assert"
)

// Forest is a min-heap of Huffman trees ordered by frequency, from which
// BuildTree grows a single tree.
type Forest struct {
	heap    *MinHeap[forestEntry]
	nextSeq uint32
}

// BuildForest returns a Forest holding one Leaf per symbol with a nonzero
// frequency.  Symbols with a frequency of 0 are left out and will receive no
// code.
func BuildForest(freqs FrequencyTable) *Forest {
	entries := make([]forestEntry, 0, freqs.Distinct())
	var seq uint32
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			entries = append(entries, forestEntry{NewLeaf(symbol, freq), seq})
			seq++
		}
	}
	return &Forest{
		heap:    NewMinHeap(forestEntry.less, entries...),
		nextSeq: seq,
	}
}

// Len returns the number of trees in the forest.
func (f *Forest) Len() int {
	return f.heap.Size()
}

func (f *Forest) push(n Node) {
	f.heap.Insert(forestEntry{n, f.nextSeq})
	f.nextSeq++
}

func (f *Forest) pop() Node {
	return f.heap.RemoveMin().node
}

// BuildTree repeatedly removes the two least-frequent trees, joins them under
// a new Internal node, and puts the result back, until one tree remains; that
// tree is returned.  The first tree removed becomes the left child.
//
// Ties in frequency go to the tree created first.  Leaves are created in
// ascending symbol order and every Internal node is newer than all leaves, so
// the output is fully determined by the frequency table.
//
// The forest must not be empty, and it is consumed by this call.
//
func BuildTree(f *Forest) Node {
	assert.Assertf(f.Len() != 0, "BuildTree called on an empty forest")

	for f.Len() > 1 {
		t1 := f.pop()
		t2 := f.pop()
		f.push(NewInternal(t1, t2))
	}
	return f.heap.Min().node
}

// type forestEntry {{{

type forestEntry struct {
	node Node
	seq  uint32
}

func (a forestEntry) less(b forestEntry) bool {
	af, bf := a.node.Frequency(), b.node.Frequency()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

// }}}
