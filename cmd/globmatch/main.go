package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pattern-tools/go-globpattern/cmd/globmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.NoMatchError) {
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
