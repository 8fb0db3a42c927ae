package main

import (
	"fmt"
	"os"

	"github.com/Sriram-PR/go-globmatch/internal/commands"
	"github.com/Sriram-PR/go-globmatch/internal/ui"
)

var version = "dev" // Injected at build time via -ldflags

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
