// Package main is the entry point for the countyq CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/satishbabariya/countyq/cmd/countyq/commands"
)

func main() {
	if err := run(); err != nil {
		var usage *commands.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, usage.Usage())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	return commands.NewRootCommand().ExecuteContext(context.Background())
}
