package main

import (
	"os"

	"github.com/harrison/perfreport/internal/cmd"
	"github.com/harrison/perfreport/internal/display"
)

func main() {
	display.AutoDisableColor()

	rootCmd := cmd.NewRootCommand()

	// Commands print their diagnostics to stdout; only the exit code is
	// decided here.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
