// Package main is the entry point for the vitalscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/vitalscan/vitalscan/cmd"
)

func main() {
	err := cmd.Execute()
	cmd.CloseStorage()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
