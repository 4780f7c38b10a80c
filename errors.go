package huffcode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSymbol is matched by errors for input outside the
	// alphabet.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrUnassignedSymbol is matched by errors for lookups of a symbol
	// that has no code in the table.
	ErrUnassignedSymbol = errors.New("symbol has no assigned code")

	// ErrCodeTooLong is returned when a tree is too deep for its codes to
	// fit in a Code.
	ErrCodeTooLong = errors.New("code exceeds maximum size")
)

// UnsupportedSymbolError reports a rune outside the alphabet and the byte
// offset in the message where it was found.
type UnsupportedSymbolError struct {
	Rune   rune
	Offset int
}

func (err *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("%v: %U at byte offset %d", ErrUnsupportedSymbol, err.Rune, err.Offset)
}

// Is makes errors.Is(err, ErrUnsupportedSymbol) true.
func (err *UnsupportedSymbolError) Is(target error) bool {
	return target == ErrUnsupportedSymbol
}

// UnassignedSymbolError reports a lookup of a symbol with no code.
type UnassignedSymbolError struct {
	Symbol Symbol
}

func (err *UnassignedSymbolError) Error() string {
	return fmt.Sprintf("%v: %d (%q)", ErrUnassignedSymbol, err.Symbol, rune(err.Symbol))
}

// Is makes errors.Is(err, ErrUnassignedSymbol) true.
func (err *UnassignedSymbolError) Is(target error) bool {
	return target == ErrUnassignedSymbol
}

var (
	_ error = (*UnsupportedSymbolError)(nil)
	_ error = (*UnassignedSymbolError)(nil)
)
