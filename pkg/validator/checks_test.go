/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "github.com/provisio/azure-template-validator/pkg/errors"
	"github.com/provisio/azure-template-validator/pkg/template"
)

func TestCheckVMSize(t *testing.T) {
	tests := []struct {
		name        string
		size        string
		wantFailure bool
	}{
		{name: "supported size passes", size: "Standard_A2"},
		{name: "unsupported size fails", size: "Standard_XYZ", wantFailure: true},
		{name: "case differences fail", size: "standard_a2", wantFailure: true},
		{name: "empty size fails", size: "", wantFailure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, &fakeProvider{port: newFakePort()})
			tmpl := testTemplate()
			tmpl[template.TokenVMSize] = tt.size

			acc := NewAccumulator()
			v.checkVMSize(tmpl, acc, template.DefaultLocalizationContext())

			if !tt.wantFailure {
				assert.Empty(t, acc.Records())
				return
			}
			records := acc.Records()
			require.Len(t, records, 1)
			assert.Equal(t, template.TokenVMSize, records[0].Token)
			assert.Contains(t, records[0].Message, tt.size)
		})
	}
}

func TestCheckFQDNSuffix(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		suffix      string
		wantFailure bool
	}{
		{
			name:    "valid suffix passes default pattern",
			suffix:  "cluster.example.com",
			pattern: "",
		},
		{
			name:        "anchored pattern rejects invalid character",
			pattern:     `^[a-z.]+$`,
			suffix:      "my.domain!",
			wantFailure: true,
		},
		{
			name:    "unanchored pattern matches anywhere in the value",
			pattern: `domain`,
			suffix:  "my.domain!",
		},
		{
			name:        "no match anywhere fails",
			pattern:     `corp`,
			suffix:      "my.domain",
			wantFailure: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.pattern != "" {
				cfg.FQDNSuffixRegex = tt.pattern
			}
			v := newTestValidator(t, &fakeProvider{port: newFakePort()}, WithConfig(cfg))

			tmpl := testTemplate()
			tmpl[template.TokenHostFQDNSuffix] = tt.suffix

			acc := NewAccumulator()
			v.checkFQDNSuffix(tmpl, acc, template.DefaultLocalizationContext())

			if !tt.wantFailure {
				assert.Empty(t, acc.Records())
				return
			}
			records := acc.Records()
			require.Len(t, records, 1)
			assert.Equal(t, template.TokenHostFQDNSuffix, records[0].Token)
			assert.Contains(t, records[0].Message, tt.suffix)
		})
	}
}

func TestCheckInstancePrefix(t *testing.T) {
	tests := []struct {
		name        string
		prefix      string
		wantFailure bool
	}{
		{name: "valid prefix", prefix: "worker"},
		{name: "uppercase fails dns label", prefix: "Worker", wantFailure: true},
		{name: "underscore fails dns label", prefix: "worker_1", wantFailure: true},
		{name: "too long fails dns label", prefix: "workernodepoolextra", wantFailure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, &fakeProvider{port: newFakePort()})
			tmpl := testTemplate()
			tmpl[template.TokenInstanceNamePrefix] = tt.prefix

			acc := NewAccumulator()
			v.checkInstancePrefix(tmpl, acc, template.DefaultLocalizationContext())

			if !tt.wantFailure {
				assert.Empty(t, acc.Records())
				return
			}
			records := acc.Records()
			require.Len(t, records, 1)
			assert.Equal(t, template.TokenInstanceNamePrefix, records[0].Token)
		})
	}
}

// TestExistenceCheckClassification verifies that for every resource-group
// style check a communication failure maps to the generic communication
// message and a not-found failure maps to the resource-specific message,
// both scoped to the check's primary field token.
func TestExistenceCheckClassification(t *testing.T) {
	checks := []struct {
		name      string
		key       string
		token     template.Token
		fragments []string
	}{
		{
			name:      "compute resource group",
			key:       "rg/rg-compute",
			token:     template.TokenComputeResourceGroup,
			fragments: []string{"Resource Group 'rg-compute' does not exist"},
		},
		{
			name:      "virtual network resource group",
			key:       "rg/rg-net",
			token:     template.TokenVirtualNetworkResourceGroup,
			fragments: []string{"Resource Group 'rg-net' does not exist"},
		},
		{
			name:      "virtual network",
			key:       "vnet/rg-net/vnet-prod",
			token:     template.TokenVirtualNetwork,
			fragments: []string{"Virtual Network 'vnet-prod'", "Resource Group 'rg-net'"},
		},
		{
			name:      "subnet",
			key:       "subnet/rg-net/vnet-prod/default",
			token:     template.TokenSubnetName,
			fragments: []string{"Subnet 'default'", "Virtual Network 'vnet-prod'"},
		},
		{
			name:      "network security group",
			key:       "nsg/rg-net/nsg-default",
			token:     template.TokenNetworkSecurityGroup,
			fragments: []string{"Network Security Group 'nsg-default'", "Resource Group 'rg-net'"},
		},
		{
			name:      "availability set",
			key:       "as/rg-compute/as1",
			token:     template.TokenAvailabilitySet,
			fragments: []string{"Availability Set 'as1' does not exist"},
		},
	}

	for _, tc := range checks {
		t.Run(tc.name+" not found", func(t *testing.T) {
			port := newFakePort().failWith(tc.key, verrors.New(verrors.ErrCodeNotFound, "absent"))
			v := newTestValidator(t, &fakeProvider{port: port})

			acc := NewAccumulator()
			v.Validate(t.Context(), "workers", testTemplate(), acc, nil)

			var matched []FailureRecord
			for _, rec := range acc.Records() {
				if rec.Token == tc.token {
					matched = append(matched, rec)
				}
			}
			require.Len(t, matched, 1, "expected exactly one record for %s", tc.token)
			for _, frag := range tc.fragments {
				assert.Contains(t, matched[0].Message, frag)
			}
		})

		t.Run(tc.name+" communication failure", func(t *testing.T) {
			port := newFakePort().failWith(tc.key, verrors.New(verrors.ErrCodeCommunication, "timeout"))
			v := newTestValidator(t, &fakeProvider{port: port})

			acc := NewAccumulator()
			v.Validate(t.Context(), "workers", testTemplate(), acc, nil)

			var matched []FailureRecord
			for _, rec := range acc.Records() {
				if rec.Token == tc.token {
					matched = append(matched, rec)
				}
			}
			require.Len(t, matched, 1)
			assert.Contains(t, matched[0].Message, "Cannot communicate with Azure")
		})
	}
}

// A not-found failure on a shared resource group scopes records to each
// check that looked it up: rg-net backs both the virtual network and the
// NSG resource group checks.
func TestSharedResourceGroupFailureScopesPerCheck(t *testing.T) {
	port := newFakePort().failWith("rg/rg-net", verrors.New(verrors.ErrCodeNotFound, "absent"))
	v := newTestValidator(t, &fakeProvider{port: port})

	acc := NewAccumulator()
	v.Validate(t.Context(), "workers", testTemplate(), acc, nil)

	records := acc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, template.TokenVirtualNetworkResourceGroup, records[0].Token)
	assert.Equal(t, template.TokenNetworkSecurityGroupResourceGroup, records[1].Token)
}

func TestNearestSupportedSize(t *testing.T) {
	supported := []string{"Standard_A1", "Standard_A2"}

	tests := []struct {
		name string
		size string
		want string
	}{
		{name: "close typo suggests", size: "Standard_A11", want: "Standard_A1"},
		{name: "case slip suggests", size: "standard_A2", want: "Standard_A2"},
		{name: "nothing close", size: "m5.xlarge", want: ""},
		{name: "empty input", size: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestSupportedSize(tt.size, supported))
		})
	}
}
