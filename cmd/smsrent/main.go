package main

import (
	"os"

	"github.com/avc/smsrent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
