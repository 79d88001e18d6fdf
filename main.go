package main

import (
	"os"

	"github.com/elliotskunk/stumble/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
