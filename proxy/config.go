package proxy

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlProxyConfig struct {
	Debug          bool `yaml:"debug"`
	Validation     bool `yaml:"validation"`
	DefaultHeaders []struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	} `yaml:"defaultHeaders"`
}

func optionFromProxyConfig(cfg yamlProxyConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Debug
		o.Validation = cfg.Validation

		if o.DefaultHeaders == nil {
			o.DefaultHeaders = make(map[string]string)
		}
		for _, h := range cfg.DefaultHeaders {
			if h.Name == "" {
				continue
			}
			o.DefaultHeaders[h.Name] = h.Value
		}
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlProxyConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return optionFromProxyConfig(cfg), nil
}

// WithConfig parses YAML bytes following proxy.yml structure and
// applies them to Options. It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("proxy.WithConfig: %w", err))
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
			panic(fmt.Errorf("proxy.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
