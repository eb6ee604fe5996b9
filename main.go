package main

import (
	"os"

	"github.com/halvden/grimoire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
