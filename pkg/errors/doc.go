/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for programmatic error
// classification across the plugin. Resource lookups return errors carrying
// an ErrorCode so callers can branch on the classification instead of
// inspecting error identity.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeCommunication,
//	    "failed to fetch resource group",
//	    cause,
//	)
//
//	if errors.IsCode(err, errors.ErrCodeCommunication) {
//	    // transient failure, caller may retry
//	}
package errors
