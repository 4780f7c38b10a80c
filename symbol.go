package huffcode

// Symbol represents a symbol in the 256-symbol alphabet.  Negative symbols
// are not valid.
type Symbol int32

// NumSymbols is the size of the alphabet.  Symbol s corresponds to the code
// point U+0000 + s, i.e. the alphabet is Latin-1.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// FixedWidth is the number of bits per symbol in an uncompressed message.
const FixedWidth = 8

// IsValid returns true iff the symbol belongs to the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// symbolForRune maps a rune onto the alphabet.
func symbolForRune(r rune) (Symbol, bool) {
	if r < 0 || r > rune(MaxSymbol) {
		return InvalidSymbol, false
	}
	return Symbol(r), true
}
