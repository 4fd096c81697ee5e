package server

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/aura-studio/gateway/local"
	"github.com/aura-studio/gateway/proxy"
)

type yamlServerConfig struct {
	Mode  Mode `yaml:"mode"`
	Proxy any  `yaml:"proxy"`
	Local any  `yaml:"local"`
}

// optionFromServerConfig turns one parsed document into an Option. The
// proxy and local blocks are re-marshaled and handed to the respective
// package's WithConfig, so each block follows that package's own
// structure.
func optionFromServerConfig(cfg yamlServerConfig) (Option, error) {
	if cfg.Mode != "" {
		switch cfg.Mode {
		case ModeLambda, ModeLocal:
		default:
			return nil, fmt.Errorf("unrecognized mode: %q", cfg.Mode)
		}
	}

	var proxyOpt proxy.Option
	if cfg.Proxy != nil {
		b, err := yaml.Marshal(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		proxyOpt = proxy.WithConfig(b)
	}

	var localOpt local.Option
	if cfg.Local != nil {
		b, err := yaml.Marshal(cfg.Local)
		if err != nil {
			return nil, err
		}
		localOpt = local.WithConfig(b)
	}

	return OptionFunc(func(o *Options) {
		if cfg.Mode != "" {
			o.Mode = cfg.Mode
		}
		if proxyOpt != nil {
			o.Proxy = append(o.Proxy, proxyOpt)
		}
		if localOpt != nil {
			o.Local = append(o.Local, localOpt)
		}
	}), nil
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlServerConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return optionFromServerConfig(cfg)
}

// WithConfig parses YAML bytes following gateway.yml structure and
// applies them to Options. It panics if the YAML is invalid or names
// an unrecognized mode.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("server.WithConfig: %w", err))
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
			panic(fmt.Errorf("server.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
