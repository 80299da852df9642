package main

import (
	"os"

	"github.com/jgornowich/log4cplus/cmd/logfilter/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
