package main

import (
	"os"

	"github.com/npillmayer/translit/cmd/translit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
