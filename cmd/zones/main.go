package main

import (
	"os"

	"github.com/rustyeddy/zones/cmd/zones/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
