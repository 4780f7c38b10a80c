package huffcode

// FrequencyTable maps each Symbol to its number of occurrences.  Symbols that
// do not occur have a count of 0.
type FrequencyTable [NumSymbols]uint64

// CountFrequency scans the message once and counts each symbol.  An empty
// message yields the all-zero table.  A rune outside the alphabet fails the
// whole count with an *UnsupportedSymbolError.
func CountFrequency(message string) (FrequencyTable, error) {
	var freqs FrequencyTable
	for offset, r := range message {
		symbol, ok := symbolForRune(r)
		if !ok {
			return FrequencyTable{}, &UnsupportedSymbolError{Rune: r, Offset: offset}
		}
		freqs[symbol]++
	}
	return freqs, nil
}

// Total returns the sum of all counts, i.e. the message length in symbols.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// Distinct returns the number of symbols with a nonzero count.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}
