// Command flipbook is the CLI front door for the PDF to flipbook converter.
package main

import (
	"os"

	"github.com/municipress/flipbook/cmd/flipbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
