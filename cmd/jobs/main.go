package main

import (
	"os"

	"github.com/teranos/jobs/cmd/jobs/commands"
	"github.com/teranos/jobs/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
