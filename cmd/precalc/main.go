package main

import (
	"os"

	"github.com/msto63/precalc/cmd/precalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
