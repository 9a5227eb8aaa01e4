/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package images

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/provisio/azure-template-validator/pkg/errors"
)

// Descriptor identifies one marketplace VM image. All four fields are
// required for a registry entry to be usable.
type Descriptor struct {
	Publisher string `yaml:"publisher" json:"publisher"`
	Offer     string `yaml:"offer" json:"offer"`
	SKU       string `yaml:"sku" json:"sku"`
	Version   string `yaml:"version" json:"version"`
}

// String renders the descriptor in publisher:offer:sku:version form, the
// order used by validation failure messages.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", d.Publisher, d.Offer, d.SKU, d.Version)
}

// missingFields lists the required descriptor fields that are empty.
func (d Descriptor) missingFields() []string {
	var missing []string
	if d.Publisher == "" {
		missing = append(missing, "publisher")
	}
	if d.Offer == "" {
		missing = append(missing, "offer")
	}
	if d.SKU == "" {
		missing = append(missing, "sku")
	}
	if d.Version == "" {
		missing = append(missing, "version")
	}
	return missing
}

// Registry maps logical image names to marketplace image descriptors.
// It is loaded once before validation begins and read-only afterwards.
// Entries may be incomplete in the source file; completeness is checked
// at lookup time so one bad entry does not poison the whole registry.
type Registry struct {
	entries map[string]Descriptor
}

// NewRegistry creates a Registry from an in-memory descriptor map.
func NewRegistry(entries map[string]Descriptor) *Registry {
	if entries == nil {
		entries = make(map[string]Descriptor)
	}
	return &Registry{entries: entries}
}

// Load reads an image registry from a YAML file mapping image names to
// descriptors.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image registry %q: %w", path, err)
	}

	var entries map[string]Descriptor
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse image registry %q: %w", path, err)
	}

	return NewRegistry(entries), nil
}

// Get returns the descriptor registered under name.
//
// Failure classification:
//   - ErrCodeNotFound: name is not present in the registry
//   - ErrCodeInvalidArgument: the entry exists but is missing required fields
func (r *Registry) Get(name string) (Descriptor, error) {
	desc, ok := r.entries[name]
	if !ok {
		return Descriptor{}, errors.NewWithContext(errors.ErrCodeNotFound,
			"image not present in configurable image list",
			map[string]any{"image": name})
	}

	if missing := desc.missingFields(); len(missing) > 0 {
		return Descriptor{}, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"image entry is missing required fields",
			map[string]any{"image": name, "missing": missing})
	}

	return desc, nil
}

// Len returns the number of registered image names.
func (r *Registry) Len() int {
	return len(r.entries)
}
