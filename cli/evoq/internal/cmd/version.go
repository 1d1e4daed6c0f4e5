package cmd

import (
	"github.com/lukepuplett/evoq-blockchain-sub000/cli"
)

var versionCmd = cli.NewVersionCommand("evoq")

func init() {
	RootCmd.AddCommand(versionCmd)
}
