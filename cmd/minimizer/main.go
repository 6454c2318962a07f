package main

import (
	"os"

	"github.com/ryogrid/cqbase/cmd/cli"
)

func main() {
	if err := cli.NewMinimizerCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
