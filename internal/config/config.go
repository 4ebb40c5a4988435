// Package config loads tool settings from kindling.yml in the working
// directory. The file is optional; every setting has a default so the tool
// works out of the box.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds tool-level settings.
type Config struct {
	// TemplatesDir is where custom template manifests live.
	TemplatesDir string

	// OutputDir is the default destination for generated files.
	OutputDir string
}

// Defaults returns the configuration used when no kindling.yml exists.
func Defaults() *Config {
	return &Config{
		TemplatesDir: ".kindling/templates",
		OutputDir:    ".",
	}
}

// Load reads kindling.yml from dir, falling back to defaults when the file
// is absent. Environment variables prefixed KINDLING override file values
// (KINDLING_OUTPUT_DIR, KINDLING_TEMPLATES_DIR).
func Load(dir string) (*Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigName("kindling")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("KINDLING")
	v.AutomaticEnv()

	v.SetDefault("templates.dir", cfg.TemplatesDir)
	v.SetDefault("output.dir", cfg.OutputDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading kindling.yml: %w", err)
	}

	cfg.TemplatesDir = v.GetString("templates.dir")
	cfg.OutputDir = v.GetString("output.dir")
	return cfg, nil
}
