package main

import (
	"fmt"
	"os"

	"github.com/helmcode/excheck/cmd"
	"github.com/joho/godotenv"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd := cmd.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
