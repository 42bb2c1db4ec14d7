package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers in test logs
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DUMP_SCREEN logs the rendered console after each scenario
	DumpScreen  bool `envconfig:"E2E_DUMP_SCREEN" default:"false"`
	StrictEdits bool `envconfig:"E2E_STRICT_EDITS" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
