package proxy

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigCandidates returns relative paths checked in order when
// searching for a default proxy config.
func DefaultConfigCandidates() []string {
	return []string{
		"proxy.yaml",
		"proxy.yml",
		filepath.FromSlash("proxy/proxy.yaml"),
		filepath.FromSlash("proxy/proxy.yml"),
	}
}

// FindDefaultConfigFile searches for a proxy config file in a small
// set of well-known locations (CWD then executable directory).
func FindDefaultConfigFile() (string, error) {
	candidates := DefaultConfigCandidates()

	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		for _, rel := range candidates {
			p := rel
			if dir != "." {
				p = filepath.Join(dir, rel)
			}
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("proxy config not found (expected %v)", candidates)
}

// WithDefaultConfigFile finds and loads the default proxy config file.
// It panics if the file cannot be found or read.
func WithDefaultConfigFile() Option {
	p, err := FindDefaultConfigFile()
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("proxy.WithDefaultConfigFile: %w", err))
		})
	}
	return WithConfigFile(p)
}
