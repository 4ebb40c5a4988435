package commands

import (
	"fmt"

	"github.com/emberworks/kindling/internal/config"
	"github.com/emberworks/kindling/internal/registry"
)

// buildRegistry loads the builtin definitions plus any custom manifests
// from the configured templates directory.
func buildRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg, err := registry.Builtin()
	if err != nil {
		return nil, fmt.Errorf("loading builtin templates: %w", err)
	}
	if err := reg.LoadDir(cfg.TemplatesDir); err != nil {
		return nil, fmt.Errorf("loading custom templates: %w", err)
	}
	return reg, nil
}
