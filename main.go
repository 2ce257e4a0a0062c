// Completion: 95% - CLI interface complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
)

// A tiny JIT compiler for x86_64 Linux

const versionString = "bf67 1.0.0"

// FilterSource strips every byte that is not one of the eight language
// symbols, so the compiler core only ever sees meaningful input
func FilterSource(input string) string {
	var sb strings.Builder
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '+', '-', '<', '>', '[', ']', '.', ',':
			sb.WriteByte(input[i])
		}
	}
	return sb.String()
}

func main() {
	var versionShort = flag.Bool("V", false, "print version information and exit")
	var version = flag.Bool("version", false, "print version information and exit")
	var verbose = flag.Bool("v", false, "verbose mode (dump the program and trace emitted instructions)")
	var verboseLong = flag.Bool("verbose", false, "verbose mode (dump the program and trace emitted instructions)")
	var codeFlag = flag.String("c", "", "execute code given on the command line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bf67 [options] <filename>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version || *versionShort {
		fmt.Println(versionString)
		return
	}

	VerboseMode = *verbose || *verboseLong || env.Bool("BF67_VERBOSE")

	var source string
	switch {
	case *codeFlag != "":
		source = *codeFlag
	case flag.NArg() >= 1:
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: could not read %s: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		source = string(data)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if _, err := Run(FilterSource(source)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
