package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/mkproj/mkproj/pkg/cli"
)

func main() {
	ctx := context.Background()

	rt, err := toolkit.NewRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// cobra has already rendered any error to stderr; only the code matters.
	code, _ := cli.Run(ctx, rt, os.Args[1:])
	os.Exit(code)
}
