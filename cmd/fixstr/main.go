package main

import (
	"os"

	"github.com/bjaus/fixstr/cmd/fixstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
