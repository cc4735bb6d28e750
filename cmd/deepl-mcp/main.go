// Package main is the entry point for the deepl-mcp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/translatekit/deepl-mcp/cmd/deepl-mcp/commands"
	"github.com/translatekit/deepl-mcp/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	code := errors.ExitUser
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
	}
	os.Exit(code)
}
