package main

import (
	"os"

	"github.com/semsphy/lift/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
