package event

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlEventConfig struct {
	Debug      bool    `yaml:"debug"`
	Validation bool    `yaml:"validation"`
	Run        RunMode `yaml:"run"`
}

func optionFromEventConfig(cfg yamlEventConfig) (Option, error) {
	if cfg.Run != "" {
		switch cfg.Run {
		case RunModeStrict, RunModePartial, RunModeBatch, RunModeReentrant:
		default:
			return nil, fmt.Errorf("unrecognized run mode: %q", cfg.Run)
		}
	}
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Debug
		o.Validation = cfg.Validation
		if cfg.Run != "" {
			o.RunMode = cfg.Run
		}
	}), nil
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlEventConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return optionFromEventConfig(cfg)
}

// WithConfig parses YAML bytes following event.yml structure and
// applies them to Options. It panics if the YAML is invalid or names
// an unrecognized run mode.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("event.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options. It
// panics if the file cannot be read or the YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("event.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
