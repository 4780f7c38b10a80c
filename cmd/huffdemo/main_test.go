package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	type testRow struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}

	testData := [...]testRow{
		{
			name:   "quiet",
			args:   []string{"-q", "-m", "aabbbcc"},
			stdout: "compressed: 11 bits\nfixed-width: 56 bits\nratio: 0.1964\n",
		},
		{
			name:   "full",
			args:   []string{"-m", "abab"},
			stdout: "symbol\tfreq\tcode\n'a'\t2\t0\n'b'\t2\t1\ncompressed: 4 bits\nfixed-width: 32 bits\nratio: 0.1250\n",
		},
		{
			name:   "version",
			args:   []string{"--version"},
			stdout: "huffdemo (huffcode) " + version + "\n",
		},
		{
			name:   "unsupported",
			args:   []string{"-m", "5€"},
			code:   1,
			stderr: "huffdemo: unsupported symbol: U+20AC at byte offset 1\n",
		},
		{
			name:   "extra-args",
			args:   []string{"foo"},
			code:   1,
			stderr: "Usage: huffdemo [-q] [-m message | -f file]\n",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var stdout, stderr strings.Builder
			code := run(row.args, &stdout, &stderr)
			if code != row.code {
				t.Errorf("expected exit code %d, got %d", row.code, code)
			}
			if actual := stdout.String(); actual != row.stdout {
				t.Errorf("wrong stdout:\n\texpect: %q\n\tactual: %q", row.stdout, actual)
			}
			if actual := stderr.String(); actual != row.stderr {
				t.Errorf("wrong stderr:\n\texpect: %q\n\tactual: %q", row.stderr, actual)
			}
		})
	}
}

func TestRun_File(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(fileName, []byte("aaaa"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout, stderr strings.Builder
	if code := run([]string{"-q", "-f", fileName}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}
	expect := "compressed: 4 bits\nfixed-width: 32 bits\nratio: 0.1250\n"
	if actual := stdout.String(); actual != expect {
		t.Errorf("wrong stdout:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
