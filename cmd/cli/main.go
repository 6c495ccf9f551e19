package main

import (
	"os"

	"github.com/sevenplus-app/sevenplus-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
