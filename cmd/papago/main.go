package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	// The exit status stays 0; errors reach the user through the result document.
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "papago: %v\n", err)
	}
}
