package main

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sanity-io/litter"

	"github.com/2jungg/mol-lang/pkg/interpreter"
	"github.com/2jungg/mol-lang/pkg/parser"
)

const cliToolVersion = "mol 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "ahV")
	if err != nil {
		printError(err.Error())
		printUsage()
		return 1
	}
	dumpTree := false
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			dumpTree = true
		case 'h':
			printUsage()
			return 0
		case 'V':
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return 0
		}
	}

	rest := args[optind:]
	if len(rest) == 0 {
		printUsage()
		return 1
	}
	switch rest[0] {
	case "repl":
		return runRepl()
	case "run":
		if len(rest) < 2 {
			printUsage()
			return 1
		}
		return runFile(rest[1], dumpTree)
	default:
		return runFile(rest[0], dumpTree)
	}
}

func runFile(path string, dumpTree bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			printError(fmt.Sprintf("Error: File not found at '%s'", path))
		} else {
			printError(fmt.Sprintf("Error: %v", err))
		}
		return 1
	}

	if dumpTree {
		program, err := parser.Parse(string(source))
		if err != nil {
			printError(fmt.Sprintf("Error: SyntaxError: %s", err))
			return 1
		}
		litter.Dump(program)
		return 0
	}

	// Output streams line by line as it is produced; 뭐먹 blocks on a
	// console read. Failures are already folded into the output.
	interp := interpreter.New(os.Stdout, interpreter.NewReaderInput(os.Stdin))
	interp.Run(string(source))
	return 0
}
