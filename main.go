package main

import (
	"os"

	"github.com/bvarga/petralog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
