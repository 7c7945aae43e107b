// Package main provides the CLI entrypoint for unchecker-generator.
//
// unchecker-generator writes a Java class of "unchecker" helpers for a list
// of single-abstract-method types: for each type a variant interface whose
// method throws a checked exception, an adapter back to the original type
// that re-throws the exception wrapped in an unchecked one, and a function
// that calls a variant instance directly with the same wrapping.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := Command().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
