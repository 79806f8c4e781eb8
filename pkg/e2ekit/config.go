package e2ekit

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SuiteConfig holds suite-wide settings shared by all scenarios.
type SuiteConfig struct {
	Headless     bool          `koanf:"headless"`
	Timeout      time.Duration `koanf:"timeout"`
	ArtifactsDir string        `koanf:"artifacts_dir"`
}

// DefaultSuiteConfig returns the settings used when no config file is
// present: headless Chrome, 30s per operation, artifacts in a temp dir.
func DefaultSuiteConfig() SuiteConfig {
	return SuiteConfig{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

// LoadSuiteConfig reads path (YAML) over the defaults. A missing file is not
// an error, the defaults apply. Set HEADLESS=false in the environment to
// watch the browser locally regardless of the file.
func LoadSuiteConfig(path string) (SuiteConfig, error) {
	cfg := DefaultSuiteConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			k := koanf.New(".")
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("load %s: %w", path, err)
			}
			if err := k.Unmarshal("", &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if os.Getenv("HEADLESS") == "false" {
		cfg.Headless = false
	}

	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// BrowserConfig converts the suite settings into browser launch options.
func (c SuiteConfig) BrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless: c.Headless,
		Timeout:  c.Timeout,
	}
}
