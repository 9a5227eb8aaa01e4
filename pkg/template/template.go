/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Token identifies one instance template configuration property.
type Token string

// Recognized instance template configuration property tokens.
const (
	TokenVMSize                            Token = "vmSize"
	TokenComputeResourceGroup              Token = "computeResourceGroup"
	TokenVirtualNetwork                    Token = "virtualNetwork"
	TokenVirtualNetworkResourceGroup       Token = "virtualNetworkResourceGroup"
	TokenSubnetName                        Token = "subnetName"
	TokenNetworkSecurityGroup              Token = "networkSecurityGroup"
	TokenNetworkSecurityGroupResourceGroup Token = "networkSecurityGroupResourceGroup"
	TokenAvailabilitySet                   Token = "availabilitySet"
	TokenHostFQDNSuffix                    Token = "hostFqdnSuffix"
	TokenInstanceNamePrefix                Token = "instanceNamePrefix"
	TokenImage                             Token = "image"
)

// Tokens returns the full enumerated set of configuration property tokens.
func Tokens() []Token {
	return []Token{
		TokenVMSize,
		TokenComputeResourceGroup,
		TokenVirtualNetwork,
		TokenVirtualNetworkResourceGroup,
		TokenSubnetName,
		TokenNetworkSecurityGroup,
		TokenNetworkSecurityGroupResourceGroup,
		TokenAvailabilitySet,
		TokenHostFQDNSuffix,
		TokenInstanceNamePrefix,
		TokenImage,
	}
}

// String returns the string representation of the Token.
func (t Token) String() string {
	return string(t)
}

// Configured is the read-only configuration port handed to the validator by
// the host. A present token never fails to resolve; absent tokens yield the
// empty string.
type Configured interface {
	Get(token Token) string
}

// MapConfig is a Configured implementation backed by a plain map.
// It is immutable by convention: the validator only reads from it.
type MapConfig map[Token]string

// Get implements Configured.
func (m MapConfig) Get(token Token) string {
	return m[token]
}

// Load reads an instance template from a YAML file keyed by token names.
func Load(path string) (MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %q: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", path, err)
	}

	cfg := make(MapConfig, len(raw))
	for k, v := range raw {
		cfg[Token(k)] = v
	}
	return cfg, nil
}
