/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package images provides the configurable image registry: a static mapping
// from logical image names (e.g. "ubuntu2404") to Azure marketplace image
// descriptors (publisher, offer, SKU, version).
//
// The registry file is YAML:
//
//	ubuntu2404:
//	  publisher: Canonical
//	  offer: ubuntu-24_04-lts
//	  sku: server
//	  version: latest
//
// Lookups distinguish an absent entry from an incomplete one so the validator
// can report each case with its own message.
package images
