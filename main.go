package main

import (
	"os"

	"github.com/m-mizutani/shipgate/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(2)
	}
}
