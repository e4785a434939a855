package main

import (
	"os"

	"github.com/nhileteam/nlt-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
