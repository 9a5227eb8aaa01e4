/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package lookup defines the resource lookup capability used by remote
// existence checks.
//
// The Port interface abstracts the cloud provider: each method returns the
// requested resource or an error classified with a code from pkg/errors.
// Ports are acquired fresh per validation pass through a Provider, because a
// port may hold a short-lived authorization token.
//
// The package ships two Port building blocks:
//
//   - Inventory: an offline implementation backed by a YAML-declared
//     resource inventory, used by the CLI and tests.
//   - RateLimited: a decorator applying a shared token bucket to all lookup
//     calls, guarding against provider API throttling.
//
// A production Azure-backed Port lives with the host's credential handling,
// outside this repository.
package lookup
