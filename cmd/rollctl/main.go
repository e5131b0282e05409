// Package main is an operator CLI for the Outgunned dice bot: it inspects
// and edits channel settings, decodes button tokens and exercises the roll
// message format without a Discord connection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
