package main

import (
	"os"

	"xword/cmd/xword/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
