package main

import (
	"os"

	"github.com/wanderpeak/tours/cmd/sitegen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
