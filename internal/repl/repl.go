package repl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"arraycore/internal/reporting"
	"arraycore/internal/vm"
)

// Start runs the interactive loop: each line is a complete JSON
// pipeline document, compiled and run against a fresh VM, with its
// result (or error) echoed immediately. type 'exit' to quit.
func Start() {
	prompt := ">>> "
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = ""
	}

	fmt.Println("arraycore REPL | one JSON pipeline per line | 'exit' to quit")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		result, _, err := RunJSON([]byte(line))
		if err != nil {
			fmt.Println(reporting.FormatError(err))
			continue
		}
		if result != nil {
			vm.PrintValue(result)
		}
	}
}
