package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"yt2reader/internal/adapters/cli"
)

func main() {
	// A local .env may carry YT2READER_TOKEN; absence is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
