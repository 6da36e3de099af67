package config

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/mintlabs/go-mint/common"
)

const DefaultConfigFileName = "mint.config.json"

type Config struct {
	DataDir string `json:"DataDir"`

	HTTPHost string `json:"HTTPHost"`
	HTTPPort int    `json:"HTTPPort"`

	LogLevel string `json:"LogLevel"`
}

func defaultConfig() *Config {
	return &Config{
		DataDir:  common.DefaultDataDir(),
		HTTPHost: common.DefaultHTTPHost,
		HTTPPort: common.DefaultHTTPPort,
		LogLevel: "info",
	}
}

// Load reads the JSON config file, falling back to defaults for anything
// missing. A missing file is not an error; the defaults carry the node.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = DefaultConfigFileName
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	text, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(text, cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = common.DefaultDataDir()
	}
	if cfg.HTTPHost == "" {
		cfg.HTTPHost = common.DefaultHTTPHost
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = common.DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
