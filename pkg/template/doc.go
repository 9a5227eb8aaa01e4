/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package template defines the instance template configuration surface shared
// between the host and the validator.
//
// A template is an opaque, read-only key-value mapping. Keys come from a fixed
// enumerated set of Tokens (VM size, networking, resource groups, image, and
// naming properties). The validator never mutates a template; it only reads
// values through the Configured port.
//
// The package also provides the LocalizationContext used to format
// user-facing failure messages for the host's target language.
package template
