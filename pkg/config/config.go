/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the plugin config file omits a setting.
const (
	// DefaultDNSLabelRegex constrains instance name prefixes to Azure DNS
	// label rules within the 15 character Windows computer name limit.
	DefaultDNSLabelRegex = `^[a-z][a-z0-9-]{0,13}[a-z0-9]$`

	// DefaultFQDNSuffixRegex constrains host FQDN suffixes to DNS name form.
	DefaultFQDNSuffixRegex = `^(?:[a-z0-9][a-z0-9-]*\.)+[a-z]{2,}$`

	// DefaultLocation is the deployment region assumed when none is configured.
	DefaultLocation = "eastus"

	// DefaultLookupRate is the sustained resource lookup rate (requests/sec)
	// allowed against the cloud provider API.
	DefaultLookupRate = 10

	// DefaultLookupBurst is the lookup burst size.
	DefaultLookupBurst = 20
)

// defaultSupportedSizes lists the VM sizes validated against when the config
// file does not carry its own list.
var defaultSupportedSizes = []string{
	"Standard_D2s_v3",
	"Standard_D4s_v3",
	"Standard_D8s_v3",
	"Standard_DS12_v2",
	"Standard_DS13_v2",
	"Standard_DS14_v2",
	"Standard_E4s_v3",
	"Standard_E8s_v3",
	"Standard_E16s_v3",
}

// Config carries the provider-section plugin settings consulted during
// template validation.
type Config struct {
	// Location is the deployment region. Some resources exist in one region
	// but not in others, so image existence is always checked per region.
	Location string `yaml:"location"`

	// SupportedSizes is the closed list of VM sizes accepted by the plugin.
	// Membership is case-sensitive exact match.
	SupportedSizes []string `yaml:"supportedSizes"`

	// DNSLabelRegex validates instance name prefixes.
	DNSLabelRegex string `yaml:"dnsLabelRegex"`

	// FQDNSuffixRegex validates host FQDN suffixes.
	FQDNSuffixRegex string `yaml:"fqdnSuffixRegex"`

	// LookupRate is the sustained remote lookup rate in requests per second.
	// Zero disables rate limiting.
	LookupRate float64 `yaml:"lookupRate"`

	// LookupBurst is the remote lookup burst allowance.
	LookupBurst int `yaml:"lookupBurst"`
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		Location:        DefaultLocation,
		SupportedSizes:  append([]string(nil), defaultSupportedSizes...),
		DNSLabelRegex:   DefaultDNSLabelRegex,
		FQDNSuffixRegex: DefaultFQDNSuffixRegex,
		LookupRate:      DefaultLookupRate,
		LookupBurst:     DefaultLookupBurst,
	}
}

// Load reads a plugin config file and overlays it on the defaults.
// Settings omitted from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin config %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse plugin config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configured patterns compile and the settings are
// internally consistent.
func (c *Config) Validate() error {
	if c.Location == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if _, err := regexp.Compile(c.DNSLabelRegex); err != nil {
		return fmt.Errorf("invalid dnsLabelRegex: %w", err)
	}
	if _, err := regexp.Compile(c.FQDNSuffixRegex); err != nil {
		return fmt.Errorf("invalid fqdnSuffixRegex: %w", err)
	}
	if c.LookupRate < 0 {
		return fmt.Errorf("lookupRate cannot be negative")
	}
	if c.LookupBurst < 0 {
		return fmt.Errorf("lookupBurst cannot be negative")
	}
	// a limiter with zero burst would reject every lookup
	if c.LookupRate > 0 && c.LookupBurst < 1 {
		return fmt.Errorf("lookupBurst must be at least 1 when lookupRate is set")
	}
	return nil
}
