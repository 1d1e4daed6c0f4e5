// Package cmd implements the CLI commands for the evoq document tool.
package cmd

import (
	"github.com/lukepuplett/evoq-blockchain-sub000/cli"
)

// RootCmd represents the base "evoq" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("evoq",
	"Merkle exchange document tool",
	`evoq creates, redacts, verifies and stores Merkle exchange
documents: JSON documents whose named fields are bound into a
Merkle root so that any field can later be redacted without
breaking verification.`)
