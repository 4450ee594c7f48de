package main

import (
	"os"

	"github.com/yourname/upload_pipeline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
