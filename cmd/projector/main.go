package main

import (
	"os"

	"github.com/rpgo/projector/cmd/projector/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
