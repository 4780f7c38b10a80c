package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// Result holds everything computed for one message.
type Result struct {
	Message     string
	Frequencies FrequencyTable

	// Root is nil for an empty message.
	Root  Node
	Codes CodeTable

	CompressedBits uint64
	BaselineBits   uint64
}

// Build runs the whole pipeline for a message: count frequencies, build the
// forest and the tree, assign codes, and measure the coded length.
//
// An empty message produces an empty code table and zero lengths without
// building a tree.  On error, no Result is returned.
//
func Build(message string) (*Result, error) {
	freqs, err := CountFrequency(message)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Message:      message,
		Frequencies:  freqs,
		BaselineBits: FixedWidthLength(message),
	}
	if len(message) == 0 {
		return r, nil
	}

	r.Root = BuildTree(BuildForest(freqs))
	r.Codes, err = CreateEncodingTable(r.Root)
	if err != nil {
		return nil, err
	}
	r.CompressedBits, err = ComputeCompressionLength(message, &r.Codes)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Ratio returns CompressedBits / BaselineBits, or 0 for an empty message.
func (r *Result) Ratio() float64 {
	if r.BaselineBits == 0 {
		return 0
	}
	return float64(r.CompressedBits) / float64(r.BaselineBits)
}

// Decoder returns a Decoder for the result's tree.
func (r *Result) Decoder() Decoder {
	return NewDecoder(r.Root)
}

// Dump writes a human-readable report: one line per coded symbol, then the
// coded and fixed-width lengths.
func (r *Result) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("symbol\tfreq\tcode\n")
	for _, symbol := range r.Codes.Symbols() {
		fmt.Fprintf(&buf, "%q\t%d\t%s\n", rune(symbol), r.Frequencies[symbol], r.Codes.Encode(symbol).BitString())
	}
	r.dumpLengths(&buf)
	return buf.WriteTo(w)
}

// DumpLengths writes only the coded and fixed-width lengths.
func (r *Result) DumpLengths(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	r.dumpLengths(&buf)
	return buf.WriteTo(w)
}

func (r *Result) dumpLengths(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "compressed: %d bits\n", r.CompressedBits)
	fmt.Fprintf(buf, "fixed-width: %d bits\n", r.BaselineBits)
	fmt.Fprintf(buf, "ratio: %.4f\n", r.Ratio())
}
