package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/sign"
	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// CommonConfig is the generic type used to specify the configuration
// of any evoq executable. It contains some common configuration values
// including the file path, logger configuration, and config loader.
type CommonConfig struct {
	Path     string
	Logger   *LoggerConfig `toml:"logger"`
	Encoding string
	loader   ConfigLoader
}

// NewCommonConfig initializes an application's config file path,
// its loader for the given encoding, and the logger configuration.
// Note: This constructor must be called in each Load() method
// implementation of an AppConfig.
func NewCommonConfig(file, encoding string, logger *LoggerConfig) *CommonConfig {
	return &CommonConfig{
		Path:     file,
		Logger:   logger,
		Encoding: encoding,
		loader:   newConfigLoader(encoding),
	}
}

// GetLoader returns the config's loader.
func (conf *CommonConfig) GetLoader() ConfigLoader {
	return conf.loader
}

// ToolConfig is the configuration of the evoq command-line tool: where
// the document store lives, where the sealing key is kept, and which
// exchange format new documents are written in.
type ToolConfig struct {
	*CommonConfig
	StorePath      string `toml:"store_path"`
	SealingKeyPath string `toml:"sealing_key_path"`
	DefaultVersion string `toml:"default_version"`
}

var _ AppConfig = (*ToolConfig)(nil)

// NewToolConfig constructs a tool configuration with the given
// settings.
func NewToolConfig(file, encoding string, logger *LoggerConfig, storePath, keyPath, version string) *ToolConfig {
	return &ToolConfig{
		CommonConfig:   NewCommonConfig(file, encoding, logger),
		StorePath:      storePath,
		SealingKeyPath: keyPath,
		DefaultVersion: version,
	}
}

// Load initializes the tool configuration from the given file.
func (conf *ToolConfig) Load(file, encoding string) error {
	conf.CommonConfig = NewCommonConfig(file, encoding, nil)
	return conf.GetLoader().Decode(conf)
}

// Save writes the tool configuration to its file path.
func (conf *ToolConfig) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the tool configuration's file path.
func (conf *ToolConfig) GetPath() string {
	return conf.Path
}

// SealingKeyFile is the file name the evoq tool writes a freshly
// generated sealing key under.
const SealingKeyFile = "sealing.key"

// GenerateSealingKey creates a fresh sealing key and writes it to
// SealingKeyFile in the given directory.
func GenerateSealingKey(dir string) (sign.PrivateKey, error) {
	sk, err := sign.GenerateKey()
	if err != nil {
		return nil, err
	}
	if err := utils.WriteFile(filepath.Join(dir, SealingKeyFile), []byte(sk), 0600); err != nil {
		return nil, err
	}
	return sk, nil
}

// LoadSealingKey loads the sealing private key at the given path
// specified in the given config file. If the key is malformed,
// LoadSealingKey() returns an error with a nil key.
func LoadSealingKey(path, file string) (sign.PrivateKey, error) {
	keyPath := utils.ResolvePath(path, file)
	buf, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read sealing key: %v", err)
	}
	sk, err := sign.NewPrivateKey(buf)
	if err != nil {
		return nil, err
	}
	return sk, nil
}

// SaveConfig saves the given config to the given file.
func SaveConfig(file string, conf AppConfig) error {
	return conf.Save()
}
