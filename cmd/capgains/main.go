package main

import (
	"os"

	"github.com/rustyeddy/capgains/cmd/capgains/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
