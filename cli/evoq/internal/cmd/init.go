package cmd

import (
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/cli"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("the evoq document tool", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	mkConfig(dir)
	mkSealingKey(dir)
}

func mkConfig(dir string) {
	file := path.Join(dir, "config.toml")
	logger := &application.LoggerConfig{
		Environment: "development",
		Path:        "evoq.log",
	}
	conf := application.NewToolConfig(file, "toml", logger,
		"docs.db", application.SealingKeyFile, merkletree.V3)
	if err := application.SaveConfig(file, conf); err != nil {
		log.Println(err)
	}
}

func mkSealingKey(dir string) {
	if _, err := application.GenerateSealingKey(dir); err != nil {
		log.Println(err)
	}
}
