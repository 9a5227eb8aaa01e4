/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lookup

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/provisio/azure-template-validator/pkg/errors"
	"github.com/provisio/azure-template-validator/pkg/images"
)

// Inventory is an offline Port implementation backed by a declared resource
// inventory. It is used by the CLI to validate templates without cloud
// credentials, and by tests that need deterministic lookup outcomes.
//
// Scoped resources are keyed by their parent path joined with "/", e.g.
// virtual networks under "rg-net", subnets under "rg-net/vnet-prod".
type Inventory struct {
	// ResourceGroups lists the resource groups that exist.
	ResourceGroups []string `yaml:"resourceGroups"`

	// VirtualNetworks maps resource group name to its virtual networks.
	VirtualNetworks map[string][]string `yaml:"virtualNetworks"`

	// Subnets maps "resourceGroup/virtualNetwork" to its subnets.
	Subnets map[string][]string `yaml:"subnets"`

	// NetworkSecurityGroups maps resource group name to its NSGs.
	NetworkSecurityGroups map[string][]string `yaml:"networkSecurityGroups"`

	// AvailabilitySets maps resource group name to its availability sets.
	AvailabilitySets map[string][]string `yaml:"availabilitySets"`

	// Images maps location to image descriptors (publisher:offer:sku:version)
	// available there.
	Images map[string][]string `yaml:"images"`
}

// LoadInventory reads a resource inventory from a YAML file.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %q: %w", path, err)
	}

	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse inventory %q: %w", path, err)
	}

	return &inv, nil
}

// Acquire implements Provider. The inventory holds no credentials, so the
// same instance backs every acquired Port.
func (i *Inventory) Acquire(_ context.Context) (Port, error) {
	return i, nil
}

// ResourceGroup implements Port.
func (i *Inventory) ResourceGroup(_ context.Context, name string) (*Resource, error) {
	if !slices.Contains(i.ResourceGroups, name) {
		return nil, notFound("resourceGroup", name)
	}
	return &Resource{
		Kind: "resourceGroup",
		Name: name,
		ID:   "/resourceGroups/" + name,
	}, nil
}

// VirtualNetwork implements Port.
func (i *Inventory) VirtualNetwork(_ context.Context, rgName, vnName string) (*Resource, error) {
	if !slices.Contains(i.VirtualNetworks[rgName], vnName) {
		return nil, notFound("virtualNetwork", vnName)
	}
	return &Resource{
		Kind: "virtualNetwork",
		Name: vnName,
		ID:   fmt.Sprintf("/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s", rgName, vnName),
	}, nil
}

// Subnet implements Port.
func (i *Inventory) Subnet(_ context.Context, rgName, vnName, subnetName string) (*Resource, error) {
	if !slices.Contains(i.Subnets[rgName+"/"+vnName], subnetName) {
		return nil, notFound("subnet", subnetName)
	}
	return &Resource{
		Kind: "subnet",
		Name: subnetName,
		ID: fmt.Sprintf("/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s/subnets/%s",
			rgName, vnName, subnetName),
	}, nil
}

// NetworkSecurityGroup implements Port.
func (i *Inventory) NetworkSecurityGroup(_ context.Context, rgName, nsgName string) (*Resource, error) {
	if !slices.Contains(i.NetworkSecurityGroups[rgName], nsgName) {
		return nil, notFound("networkSecurityGroup", nsgName)
	}
	return &Resource{
		Kind: "networkSecurityGroup",
		Name: nsgName,
		ID:   fmt.Sprintf("/resourceGroups/%s/providers/Microsoft.Network/networkSecurityGroups/%s", rgName, nsgName),
	}, nil
}

// AvailabilitySet implements Port.
func (i *Inventory) AvailabilitySet(_ context.Context, rgName, asName string) (*Resource, error) {
	if !slices.Contains(i.AvailabilitySets[rgName], asName) {
		return nil, notFound("availabilitySet", asName)
	}
	return &Resource{
		Kind: "availabilitySet",
		Name: asName,
		ID:   fmt.Sprintf("/resourceGroups/%s/providers/Microsoft.Compute/availabilitySets/%s", rgName, asName),
	}, nil
}

// MarketplaceImage implements Port.
func (i *Inventory) MarketplaceImage(_ context.Context, location string, desc images.Descriptor) (*Resource, error) {
	if !slices.Contains(i.Images[location], desc.String()) {
		return nil, notFound("marketplaceImage", desc.String())
	}
	return &Resource{
		Kind: "marketplaceImage",
		Name: desc.String(),
	}, nil
}

func notFound(kind, name string) error {
	return errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("%s %q not found", kind, name),
		map[string]any{"kind": kind, "name": name})
}
