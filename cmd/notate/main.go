package main

import (
	"os"

	"github.com/calebcase/notation/cmd/notate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
