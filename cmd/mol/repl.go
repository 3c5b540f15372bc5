package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/2jungg/mol-lang/pkg/interpreter"
)

// runRepl evaluates one line of statements at a time against a persistent
// environment. The same stdin scanner feeds both the prompt and any 뭐먹
// reads, so input lines typed mid-program are consumed in order.
func runRepl() int {
	fmt.Fprintf(os.Stdout, "%s (ctrl-d to exit)\n", cliToolVersion)
	scanner := bufio.NewScanner(os.Stdin)
	readLine := interpreter.InputFunc(func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	})

	interp := interpreter.New(os.Stdout, readLine)
	for {
		fmt.Fprint(os.Stdout, "mol> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		interp.Run(line)
	}
}
