package main

import (
	"os"

	"github.com/mathemascii/mathemascii/cmd/mathemascii/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
