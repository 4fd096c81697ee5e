package httpapi

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlHTTPAPIConfig struct {
	Debug          bool `yaml:"debug"`
	Validation     bool `yaml:"validation"`
	DefaultHeaders []struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	} `yaml:"defaultHeaders"`
}

func optionFromHTTPAPIConfig(cfg yamlHTTPAPIConfig) Option {
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
	var cfg yamlHTTPAPIConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return optionFromHTTPAPIConfig(cfg), nil
}

// WithConfig parses YAML bytes following httpapi.yml structure and
// applies them to Options. It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("httpapi.WithConfig: %w", err))
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
			panic(fmt.Errorf("httpapi.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
