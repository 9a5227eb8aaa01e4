/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package plugin

import (
	"context"

	"github.com/provisio/azure-template-validator/pkg/template"
	"github.com/provisio/azure-template-validator/pkg/validator"
)

// ConfigurationValidator is the contract a provisioning host calls to vet an
// instance template before any resources are created. Implementations report
// every problem they find through the accumulator instead of stopping at the
// first one, and never return an error to the host.
type ConfigurationValidator interface {
	Validate(ctx context.Context, name string, cfg template.Configured,
		acc *validator.Accumulator, loc *template.LocalizationContext)
}

var _ ConfigurationValidator = (*validator.Validator)(nil)

// Metadata describes the plugin to a provisioning host at registration time.
type Metadata struct {
	// Name is the plugin identifier the host registers the validator under.
	Name string `json:"name" yaml:"name"`

	// Provider is the cloud provider this plugin validates templates for.
	Provider string `json:"provider" yaml:"provider"`

	// Version is the plugin build version.
	Version string `json:"version" yaml:"version"`
}

// Describe returns the registration metadata for this plugin build.
func Describe(version string) Metadata {
	return Metadata{
		Name:     "azure-template-validator",
		Provider: "azure",
		Version:  version,
	}
}
