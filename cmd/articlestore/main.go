package main

import (
	"os"

	"github.com/TechXTT/articlestore/pkg/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
