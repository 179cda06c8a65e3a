package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/get-eventually/go-textserde/internal/inventory"
)

const envPrefix = "HOSTCONV"

// Config is the hostconv configuration, read from HOSTCONV_* environment variables.
type Config struct {
	OutputFormat inventory.Format `envconfig:"OUTPUT_FORMAT" default:"yaml"`
	OutputDir    string           `envconfig:"OUTPUT_DIR" default:"."`
	Concurrency  int              `envconfig:"CONCURRENCY" default:"4"`
	Debug        bool             `envconfig:"DEBUG" default:"false"`
}

// ParseConfig reads the Config from the environment.
func ParseConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process(envPrefix, &config); err != nil {
		return nil, fmt.Errorf("config: failed to parse from env, %v", err)
	}

	return &config, nil
}
