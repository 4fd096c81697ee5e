package local

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlLocalConfig struct {
	Addr  string `yaml:"addr"`
	Debug bool   `yaml:"debug"`
	Cors  bool   `yaml:"cors"`
}

func optionFromLocalConfig(cfg yamlLocalConfig) Option {
	return OptionFunc(func(o *Options) {
		if cfg.Addr != "" {
			o.Addr = cfg.Addr
		}
		o.DebugMode = cfg.Debug
		o.CorsMode = cfg.Cors
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlLocalConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return optionFromLocalConfig(cfg), nil
}

// WithConfig parses YAML bytes following local.yml structure and
// applies them to Options. It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("local.WithConfig: %w", err))
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
			panic(fmt.Errorf("local.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
