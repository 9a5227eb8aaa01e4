/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the azval tool.
//
// # Overview
//
// The azval CLI validates Azure instance templates against plugin
// configuration and a resource inventory, producing one ValidationReport
// document per template. It is the standalone entry point to the same
// validation engine a provisioning host invokes through the plugin contract.
//
// # Commands
//
// validate - Validate instance templates:
//
//	azval validate --images images.yaml --inventory inventory.yaml \
//	    --template workers.yaml [--config config.yaml] [--fail-on-error]
//
// Runs local pattern and VM size checks followed by existence checks for
// every backing resource each template references, accumulating all failures
// rather than stopping at the first.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, multi-document stream for multiple templates
//
// JSON:
//   - Machine-parseable, array for multiple templates
//   - Suitable for programmatic consumption
package cli
