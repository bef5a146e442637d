package main

import (
	"os"

	"github.com/tolgahan/oka/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
