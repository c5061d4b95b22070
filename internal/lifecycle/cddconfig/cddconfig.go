// Package cddconfig holds the per-doctoral-committee (CDD) settings the
// lifecycle reads: the minimum jury size and the committee mailbox.
package cddconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMinJuryMembers applies to committees without their own setting.
const DefaultMinJuryMembers = 4

// Committee is the configuration of one CDD.
type Committee struct {
	MinJuryMembers int    `yaml:"min_jury_members"`
	ManagerEmail   string `yaml:"manager_email"`
	ManagerName    string `yaml:"manager_name"`
	Language       string `yaml:"language"`
}

// Config maps CDD codes to their committee settings.
type Config struct {
	DefaultMinJuryMembers int                  `yaml:"default_min_jury_members"`
	Committees            map[string]Committee `yaml:"committees"`
}

// Default returns a configuration without committee overrides.
func Default() *Config {
	return &Config{DefaultMinJuryMembers: DefaultMinJuryMembers, Committees: map[string]Committee{}}
}

// Load reads a YAML file. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cdd config: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse cdd config: %w", err)
	}
	if cfg.DefaultMinJuryMembers <= 0 {
		return nil, fmt.Errorf("parse cdd config: default_min_jury_members must be positive, got %d", cfg.DefaultMinJuryMembers)
	}
	normalized := make(map[string]Committee, len(cfg.Committees))
	for code, c := range cfg.Committees {
		if c.MinJuryMembers < 0 {
			return nil, fmt.Errorf("parse cdd config: committee %s: negative min_jury_members", code)
		}
		normalized[strings.ToUpper(strings.TrimSpace(code))] = c
	}
	cfg.Committees = normalized
	return cfg, nil
}

// MinJuryMembers returns the minimum jury size of the committee.
func (c *Config) MinJuryMembers(cddCode string) int {
	if committee, ok := c.committee(cddCode); ok && committee.MinJuryMembers > 0 {
		return committee.MinJuryMembers
	}
	return c.DefaultMinJuryMembers
}

// Committee returns the settings of cddCode, if configured.
func (c *Config) Committee(cddCode string) (Committee, bool) {
	return c.committee(cddCode)
}

func (c *Config) committee(cddCode string) (Committee, bool) {
	committee, ok := c.Committees[strings.ToUpper(strings.TrimSpace(cddCode))]
	return committee, ok
}
