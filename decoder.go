package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder resolves Codes back to Symbols by walking a Huffman tree.
type Decoder struct {
	root Node
}

// NewDecoder returns a Decoder for the tree rooted at root.  A nil root is
// permitted and decodes nothing.
func NewDecoder(root Node) Decoder {
	return Decoder{root: root}
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and
// minSize == maxSize == hc.Size.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and
// the complete codes that begin with hc are between minSize and maxSize bits
// long.
//
// If the Decode fails because no code begins with hc, symbol ==
// InvalidSymbol and minSize == maxSize == 0.
//
// A tree consisting of a single leaf decodes the one-bit code "0".
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	switch root := d.root.(type) {
	case nil:
		return InvalidSymbol, 0, 0
	case *Leaf:
		switch {
		case hc.Size == 0:
			return InvalidSymbol, 1, 1
		case hc.Size == 1 && hc.Bits == 0:
			return root.symbol, 1, 1
		default:
			return InvalidSymbol, 0, 0
		}
	}

	n := d.root
	for i := byte(0); i < hc.Size; i++ {
		in, ok := n.(*Internal)
		if !ok {
			return InvalidSymbol, 0, 0
		}
		if hc.Bit(i) == 0 {
			n = in.left
		} else {
			n = in.right
		}
	}

	if leaf, ok := n.(*Leaf); ok {
		return leaf.symbol, hc.Size, hc.Size
	}
	lo, hi := leafDepthRange(n)
	return InvalidSymbol, hc.Size + lo, hc.Size + hi
}

// DecodeString decodes a string of '0' and '1' characters that must be a
// complete code.
func (d Decoder) DecodeString(bits string) (Symbol, error) {
	hc, err := ParseCode(bits)
	if err != nil {
		return InvalidSymbol, err
	}
	symbol, _, _ := d.Decode(hc)
	if symbol == InvalidSymbol {
		return InvalidSymbol, fmt.Errorf("%q is not a complete code", bits)
	}
	return symbol, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer, one line per node in depth-first order.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root != nil {
		dumpNode(&buf, d.root, Code{})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, path Code) {
	switch x := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "\tDecode(%s) = %d [freq %d]\n", path, x.symbol, x.freq)
	case *Internal:
		fmt.Fprintf(buf, "\tDecode(%s) = ... [freq %d]\n", path, x.freq)
		dumpNode(buf, x.left, path.Append(0))
		dumpNode(buf, x.right, path.Append(1))
	}
}

// leafDepthRange returns the shallowest and deepest leaf depths below n.
func leafDepthRange(n Node) (byte, byte) {
	in, ok := n.(*Internal)
	if !ok {
		return 0, 0
	}
	llo, lhi := leafDepthRange(in.left)
	rlo, rhi := leafDepthRange(in.right)
	lo, hi := llo, lhi
	if rlo < lo {
		lo = rlo
	}
	if rhi > hi {
		hi = rhi
	}
	return lo + 1, hi + 1
}
