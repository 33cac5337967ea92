package main

import (
	"os"

	"weightlog/cmd/weightlog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
