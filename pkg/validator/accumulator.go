/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/provisio/azure-template-validator/pkg/template"
)

// FailureRecord is one reported validation problem. Token identifies the
// configuration field that caused it; an empty Token marks an unscoped,
// generic failure. Records are immutable once created.
type FailureRecord struct {
	// Token is the configuration property this failure is scoped to,
	// empty for generic failures.
	Token template.Token `json:"field,omitempty" yaml:"field,omitempty"`

	// Message is the localized, formatted failure message.
	Message string `json:"message" yaml:"message"`
}

// Accumulator collects failure records produced during one validation pass.
// It is append-only, never reset mid-validation, and call-scoped: concurrent
// validations must each use their own Accumulator. The same field may
// accumulate multiple records; no deduplication is performed.
type Accumulator struct {
	records []FailureRecord
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends one failure record. An empty token marks the record as generic.
func (a *Accumulator) Add(token template.Token, message string) {
	a.records = append(a.records, FailureRecord{Token: token, Message: message})
}

// Records returns the accumulated failures in the order they were added.
// The returned slice is a copy; the accumulator cannot be mutated through it.
func (a *Accumulator) Records() []FailureRecord {
	out := make([]FailureRecord, len(a.records))
	copy(out, a.records)
	return out
}

// Len returns the number of accumulated failures.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// HasFailures reports whether any check failed.
func (a *Accumulator) HasFailures() bool {
	return len(a.records) > 0
}
