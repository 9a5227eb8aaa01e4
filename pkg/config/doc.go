/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package config provides the plugin configuration consumed by template
// validation: the supported VM size list, naming pattern requirements, the
// deployment region, and remote lookup throttling settings.
//
// Configuration is loaded from a YAML file and overlaid on built-in defaults:
//
//	location: westus2
//	supportedSizes:
//	  - Standard_D2s_v3
//	  - Standard_D4s_v3
//	dnsLabelRegex: "^[a-z][a-z0-9-]{0,13}[a-z0-9]$"
package config
