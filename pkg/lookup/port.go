/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lookup

import (
	"context"

	"github.com/provisio/azure-template-validator/pkg/images"
)

// Resource describes a cloud resource returned by a successful lookup.
type Resource struct {
	// Kind is the resource type, e.g. "resourceGroup" or "virtualNetwork".
	Kind string `json:"kind" yaml:"kind"`

	// Name is the resource name as queried.
	Name string `json:"name" yaml:"name"`

	// ID is the provider-assigned resource identifier.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Port is the resource lookup capability used by remote existence checks.
// Each method either returns the resource or a classified error: failures
// carry an errors.ErrorCode (COMMUNICATION for transport failures,
// NOT_FOUND for absent or invisible resources, INVALID_ARGUMENT for
// malformed input). Any other error is treated as unclassified by callers.
//
// Implementations are expected to hold short-lived credentials; callers
// acquire a fresh Port per validation pass through a Provider.
type Port interface {
	// ResourceGroup looks up a resource group by name.
	ResourceGroup(ctx context.Context, name string) (*Resource, error)

	// VirtualNetwork looks up a virtual network within a resource group.
	VirtualNetwork(ctx context.Context, rgName, vnName string) (*Resource, error)

	// Subnet looks up a subnet under a virtual network within a resource group.
	Subnet(ctx context.Context, rgName, vnName, subnetName string) (*Resource, error)

	// NetworkSecurityGroup looks up a network security group within a resource group.
	NetworkSecurityGroup(ctx context.Context, rgName, nsgName string) (*Resource, error)

	// AvailabilitySet looks up an availability set within a resource group.
	AvailabilitySet(ctx context.Context, rgName, asName string) (*Resource, error)

	// MarketplaceImage checks that a marketplace image exists in the given
	// location.
	MarketplaceImage(ctx context.Context, location string, desc images.Descriptor) (*Resource, error)
}

// Provider hands out lookup Ports. Acquisition happens fresh for every
// validation pass because a Port may hold a short-lived authorization token
// that must not be reused across a long run. Acquire itself may fail, e.g.
// on an expired credential.
type Provider interface {
	Acquire(ctx context.Context) (Port, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (Port, error)

// Acquire implements Provider.
func (f ProviderFunc) Acquire(ctx context.Context) (Port, error) {
	return f(ctx)
}
