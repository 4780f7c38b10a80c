package huffcode

import (
	"strings"
	"testing"
)

func makeTestDecoder(t *testing.T) Decoder {
	t.Helper()
	root, _ := makeTestTable(t)
	return NewDecoder(root)
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)

	type testRow struct {
		code string
		min  byte
		max  byte
		sym  Symbol
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4, sym: InvalidSymbol},
		{code: "0", min: 1, max: 1, sym: 5},
		{code: "1", min: 3, max: 4, sym: InvalidSymbol},
		{code: "10", min: 3, max: 3, sym: InvalidSymbol},
		{code: "11", min: 3, max: 4, sym: InvalidSymbol},
		{code: "100", min: 3, max: 3, sym: 2},
		{code: "101", min: 3, max: 3, sym: 3},
		{code: "110", min: 4, max: 4, sym: InvalidSymbol},
		{code: "111", min: 3, max: 3, sym: 4},
		{code: "1100", min: 4, max: 4, sym: 0},
		{code: "1101", min: 4, max: 4, sym: 1},
		{code: "00", min: 0, max: 0, sym: InvalidSymbol},
		{code: "1111", min: 0, max: 0, sym: InvalidSymbol},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.code)
		if err != nil {
			t.Fatalf("ParseCode(%q) failed: %v", row.code, err)
		}
		t.Run(hc.String(), func(t *testing.T) {
			sym, min, max := d.Decode(hc)
			if sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t)

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tDecode(\"\") = ... [freq 100]\n",
		"\tDecode(\"0\") = 5 [freq 45]\n",
		"\tDecode(\"1\") = ... [freq 55]\n",
		"\tDecode(\"10\") = ... [freq 25]\n",
		"\tDecode(\"100\") = 2 [freq 12]\n",
		"\tDecode(\"101\") = 3 [freq 13]\n",
		"\tDecode(\"11\") = ... [freq 30]\n",
		"\tDecode(\"110\") = ... [freq 14]\n",
		"\tDecode(\"1100\") = 0 [freq 5]\n",
		"\tDecode(\"1101\") = 1 [freq 9]\n",
		"\tDecode(\"111\") = 4 [freq 16]\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_SingleLeaf(t *testing.T) {
	d := NewDecoder(NewLeaf('a', 4))
	if sym, err := d.DecodeString("0"); err != nil || sym != 'a' {
		t.Errorf("expected 'a', got %d (%v)", sym, err)
	}
	if _, err := d.DecodeString("1"); err == nil {
		t.Errorf("expected error for \"1\"")
	}
	if sym, min, max := d.Decode(Code{}); sym != InvalidSymbol || min != 1 || max != 1 {
		t.Errorf("expected {-1, 1, 1}, got {%d, %d, %d}", sym, min, max)
	}
}

func TestDecoder_Empty(t *testing.T) {
	d := NewDecoder(nil)
	if sym, min, max := d.Decode(MakeCode(1, 0)); sym != InvalidSymbol || min != 0 || max != 0 {
		t.Errorf("expected {-1, 0, 0}, got {%d, %d, %d}", sym, min, max)
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	for _, message := range testMessages {
		t.Run(message, func(t *testing.T) {
			r, err := Build(message)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			d := r.Decoder()
			for _, symbol := range r.Codes.Symbols() {
				hc := r.Codes.Encode(symbol)
				sym, min, max := d.Decode(hc)
				if sym != symbol || min != hc.Size || max != hc.Size {
					t.Errorf("Decode(%v): expected {%d, %d, %d}, got {%d, %d, %d}", hc, symbol, hc.Size, hc.Size, sym, min, max)
				}
			}
		})
	}
}
