package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  A Code with Size 0 means the
// symbol has no code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// CreateEncodingTable walks the tree depth-first, appending a 0 bit for each
// step to a left child and a 1 bit for each step to a right child, and gives
// every leaf the path that reached it.
//
// A nil root yields an empty table.  A root that is itself a leaf is given the
// one-bit code "0", since the empty string cannot be decoded.  A tree deeper
// than MaxCodeSize fails with ErrCodeTooLong.
//
func CreateEncodingTable(root Node) (CodeTable, error) {
	var t CodeTable
	if root == nil {
		return t, nil
	}
	if leaf, ok := root.(*Leaf); ok {
		t.assign(leaf.symbol, MakeCode(1, 0))
		return t, nil
	}
	if depth := Depth(root); depth > MaxCodeSize {
		return CodeTable{}, fmt.Errorf("%w: tree depth %d > %d", ErrCodeTooLong, depth, MaxCodeSize)
	}
	t.walk(root, Code{})
	return t, nil
}

func (t *CodeTable) walk(n Node, path Code) {
	switch x := n.(type) {
	case *Leaf:
		t.assign(x.symbol, path)
	case *Internal:
		t.walk(x.left, path.Append(0))
		t.walk(x.right, path.Append(1))
	}
}

func (t *CodeTable) assign(symbol Symbol, hc Code) {
	assert.Assertf(t.codes[symbol].Size == 0, "symbol %d assigned twice", symbol)
	t.codes[symbol] = hc
	if t.count == 0 {
		t.minSize, t.maxSize = hc.Size, hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.count++
}

// Encode returns the Code for a Symbol, or the zero Code if it has none.
func (t *CodeTable) Encode(symbol Symbol) Code {
	assert.Assertf(symbol.IsValid(), "symbol %d outside alphabet", symbol)
	return t.codes[symbol]
}

// Lookup returns the Code for a Symbol, or an *UnassignedSymbolError if it
// has none.
func (t *CodeTable) Lookup(symbol Symbol) (Code, error) {
	if !symbol.IsValid() || t.codes[symbol].Size == 0 {
		return Code{}, &UnassignedSymbolError{Symbol: symbol}
	}
	return t.codes[symbol], nil
}

// Len returns the number of symbols with a code.
func (t *CodeTable) Len() int {
	return t.count
}

// MinSize is the bit length of the shortest assigned code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (t *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range t.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Symbols returns the symbols that have a code, in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, t.count)
	for symbol, hc := range t.codes {
		if hc.Size != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.  Symbols without a code are skipped.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// ComputeCompressionLength returns the number of bits needed to write the
// message with the given table.  Every symbol of the message must have a
// code.
func ComputeCompressionLength(message string, t *CodeTable) (uint64, error) {
	var total uint64
	for offset, r := range message {
		symbol, ok := symbolForRune(r)
		if !ok {
			return 0, &UnsupportedSymbolError{Rune: r, Offset: offset}
		}
		hc, err := t.Lookup(symbol)
		if err != nil {
			return 0, fmt.Errorf("byte offset %d: %w", offset, err)
		}
		total += uint64(hc.Size)
	}
	return total, nil
}

// FixedWidthLength returns the number of bits needed to write the message at
// FixedWidth bits per symbol.
func FixedWidthLength(message string) uint64 {
	var n uint64
	for range message {
		n++
	}
	return n * FixedWidth
}
