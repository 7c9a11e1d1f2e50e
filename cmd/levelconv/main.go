package main

import (
	"os"

	"github.com/harrison/levelconv/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	// cobra already printed the error
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
