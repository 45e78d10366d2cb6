package main

import (
	"os"

	"github.com/logocheck/logocheck/internal/adapters/inbound/cli"
)

func main() {
	if code := cli.Execute(); code != 0 {
		os.Exit(code)
	}
}
