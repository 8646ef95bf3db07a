package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the process environment. Branch targets are architecture
// constants and deliberately absent here.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	TempDir   string `env:"TEMP_DIR"   envDefault:"/tmp/audiocond"`
	AWSRegion string `env:"AWS_REGION" envDefault:"us-east-1"`
	Device    string `env:"DEVICE"     envDefault:"cuda"`
}

// Load parses the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
