package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/storage/docstore"
	"github.com/lukepuplett/evoq-blockchain-sub000/storage/kv/leveldbkv"
	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// loadConfig reads the tool configuration named by the command's
// --config flag.
func loadConfig(cmd *cobra.Command) (*application.ToolConfig, error) {
	conf := &application.ToolConfig{}
	if err := conf.Load(cmd.Flag("config").Value.String(), "toml"); err != nil {
		return nil, err
	}
	return conf, nil
}

// newLogger builds the tool logger from conf, defaulting to a
// development logger when the config has no logger section.
func newLogger(conf *application.ToolConfig) *application.Logger {
	logConf := conf.Logger
	if logConf == nil {
		logConf = &application.LoggerConfig{Environment: "development"}
	}
	return application.NewLogger(logConf)
}

// openStore opens the document store configured in conf. The store
// path is resolved relative to the config file.
func openStore(conf *application.ToolConfig) (*docstore.Store, error) {
	db, err := leveldbkv.OpenDB(utils.ResolvePath(conf.StorePath, conf.GetPath()))
	if err != nil {
		return nil, err
	}
	return docstore.New(db), nil
}
