package main

import (
	"fmt"
	"os"

	"github.com/pytrove/trove-classifiers/cmd/classifiergen/cmd"
)

func main() {
	err := cmd.RootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if cmd.IsOutOfDate(err) {
		os.Exit(1)
	}
	os.Exit(2)
}
