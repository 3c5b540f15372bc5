package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed)

func printError(msg string) {
	errorColor.Fprintln(os.Stderr, msg)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mol [-a] run <file.mol>")
	fmt.Fprintln(os.Stderr, "  mol [-a] <file.mol>")
	fmt.Fprintln(os.Stderr, "  mol repl")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -a    print the parse tree instead of running")
	fmt.Fprintln(os.Stderr, "  -V    print version")
	fmt.Fprintln(os.Stderr, "  -h    show this help")
}
