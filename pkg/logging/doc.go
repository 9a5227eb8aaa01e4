/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities shared by the
// validator packages and the CLI.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, and source
// location tracking for debug logs.
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR. The LOG_LEVEL environment variable controls
// verbosity when no explicit level is set:
//
//	LOG_LEVEL=debug azval validate -t template.yaml
//
// Typical setup in main:
//
//	logging.SetDefaultStructuredLogger("azval", version)
//	slog.Info("validating template", "name", name)
package logging
