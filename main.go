package main

import (
	"os"

	"github.com/topspinhq/topspin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
