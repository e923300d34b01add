package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Discover
const FileName = "dequery.yaml"

// CurrentVersion is the configuration format version written by default
const CurrentVersion = "v1.0.0"

// maxDiscoverDepth limits parent directories visited by Discover
const maxDiscoverDepth = 64

// ErrUnsupportedVersion is returned for configuration of unknown major version
var ErrUnsupportedVersion = errors.New("unsupported configuration version")

// Rules toggles rules by name
type Rules struct {
	// Enable restricts rules to the listed ones when not empty
	Enable  []string `yaml:"enable,omitempty"`
	Disable []string `yaml:"disable,omitempty"`
}

// Config represents codemod configuration
type Config struct {
	Version string `yaml:"version"`
	// Factories are global names of the wrapper factory
	Factories []string `yaml:"factories,omitempty"`
	// Modules are module specifiers whose default export is the wrapper factory
	Modules []string `yaml:"modules,omitempty"`
	// Transformable is the allow-set of chain operations eligible for wrapper elimination
	Transformable []string `yaml:"transformable,omitempty"`
	// Baseline is the newest native feature year allowed in rewrites
	Baseline   int      `yaml:"baseline"`
	Rules      Rules    `yaml:"rules,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
	Workers    int      `yaml:"workers"`
	MaxPasses  int      `yaml:"maxPasses"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		Baseline:   2020,
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Exclude:    []string{"node_modules", "vendor", "dist", "build", ".git"},
		Workers:    4,
		MaxPasses:  10,
	}
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	version := c.Version
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid configuration version: %q", c.Version)
	}
	if semver.Major(version) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, c.Version)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %v", c.Workers)
	}
	if c.MaxPasses <= 0 {
		return fmt.Errorf("invalid maxPasses: %v", c.MaxPasses)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions were empty")
	}
	return nil
}

// RuleEnabled returns true if rule is toggled on and its native replacement fits the baseline
func (c *Config) RuleEnabled(name string, baseline int) bool {
	if c.Baseline > 0 && baseline > c.Baseline {
		return false
	}
	for _, disabled := range c.Rules.Disable {
		if disabled == name {
			return false
		}
	}
	if len(c.Rules.Enable) == 0 {
		return true
	}
	for _, enabled := range c.Rules.Enable {
		if enabled == name {
			return true
		}
	}
	return false
}

// Excluded returns true if a directory name is excluded from discovery
func (c *Config) Excluded(name string) bool {
	for _, candidate := range c.Exclude {
		if candidate == name {
			return true
		}
	}
	return false
}

// Matches returns true if file name has one of the configured extensions
func (c *Config) Matches(name string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) && !strings.HasSuffix(name, ".min"+ext) {
			return true
		}
	}
	return false
}

// Load loads configuration from URL on top of defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := Default()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}

// Discover looks up FileName in startURL and its parents and loads the nearest one.
// It returns defaults with an empty location when no configuration file exists.
func Discover(ctx context.Context, fs afs.Service, startURL string) (*Config, string, error) {
	dir := startURL
	for i := 0; i < maxDiscoverDepth && dir != ""; i++ {
		candidate := url.Join(dir, FileName)
		if ok, _ := fs.Exists(ctx, candidate); ok {
			cfg, err := Load(ctx, fs, candidate)
			return cfg, candidate, err
		}
		parent, name := url.Split(dir, file.Scheme)
		if name == "" || parent == dir {
			break
		}
		dir = parent
	}
	return Default(), "", nil
}

// Encode returns YAML representation
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
