package main

import (
	"os"

	"github.com/igire/igire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
