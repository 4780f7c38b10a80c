// huffdemo prints the Huffman code for a message and how many bits it saves.
//
// Usage:
//
//	huffdemo [-q] [-m message | -f file]
//
// Options:
//
//	-m message     message to encode (default: a demo sentence)
//	-f file        read the message from a file instead
//	-q, --quiet    print only the bit lengths
//	-h, --help     print this message
//	--version      print version information
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffcode"
)

const version = "0.1.0"

const demoMessage = "this is an example of a huffman tree"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var message, fileName string
	var quiet, showHelp, showVer bool
	fs.StringVar(&message, "m", demoMessage, "message to encode")
	fs.StringVar(&fileName, "f", "", "read the message from a file")
	fs.BoolVar(&quiet, "q", false, "print only the bit lengths")
	fs.BoolVar(&quiet, "quiet", false, "print only the bit lengths")
	fs.BoolVar(&showHelp, "h", false, "print help message")
	fs.BoolVar(&showHelp, "help", false, "print help message")
	fs.BoolVar(&showVer, "version", false, "print version information")
	fs.Usage = func() { usageMessage(stderr, false) }

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if showHelp {
		usageMessage(stdout, true)
		return 0
	}
	if showVer {
		fmt.Fprintf(stdout, "huffdemo (huffcode) %s\n", version)
		return 0
	}
	if fs.NArg() != 0 {
		usageMessage(stderr, false)
		return 1
	}

	if fileName != "" {
		raw, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Fprintf(stderr, "huffdemo: %v\n", err)
			return 1
		}
		message = string(raw)
	}

	result, err := huffcode.Build(message)
	if err != nil {
		fmt.Fprintf(stderr, "huffdemo: %v\n", err)
		return 1
	}

	if quiet {
		_, err = result.DumpLengths(stdout)
	} else {
		_, err = result.Dump(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "huffdemo: %v\n", err)
		return 1
	}
	return 0
}

func usageMessage(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "Usage: huffdemo [-q] [-m message | -f file]\n")

	if verbose {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Build a Huffman code for a message and compare its length")
		fmt.Fprintln(w, "against 8 bits per symbol.")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Options:")
		fmt.Fprintln(w, "  -m message        message to encode")
		fmt.Fprintln(w, "  -f file           read the message from a file")
		fmt.Fprintln(w, "  -q, --quiet       print only the bit lengths")
		fmt.Fprintln(w, "  -h, --help        print this message")
		fmt.Fprintln(w, "      --version     print version information")
	}
}
