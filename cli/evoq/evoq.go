// Executable evoq document tool. Run "evoq --help" for
// usage instructions.
package main

import (
	"github.com/lukepuplett/evoq-blockchain-sub000/cli"
	"github.com/lukepuplett/evoq-blockchain-sub000/cli/evoq/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
