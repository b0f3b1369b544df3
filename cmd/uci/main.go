package main

import (
	"fmt"
	"os"

	"chess-rules/internal/protocol"
)

func main() {
	if err := protocol.Loop(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}
