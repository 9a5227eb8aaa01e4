/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/google/uuid"
)

const (
	// KindValidationReport identifies report documents.
	KindValidationReport = "ValidationReport"

	// APIVersion is the schema version for validation reports.
	APIVersion = "validator.provisio.io/v1alpha1"
)

// ReportStatus is the overall validation outcome.
type ReportStatus string

const (
	// ReportStatusPass indicates every check passed.
	ReportStatusPass ReportStatus = "pass"

	// ReportStatusFail indicates at least one failure was accumulated.
	ReportStatusFail ReportStatus = "fail"
)

// Summary contains aggregate statistics for one validation pass.
type Summary struct {
	// Failures is the number of accumulated failure records.
	Failures int `json:"failures" yaml:"failures"`

	// Status is the overall outcome.
	Status ReportStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the serializable outcome of one validation pass, built from the
// accumulator after Validate returns.
type Report struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// ID uniquely identifies this validation pass.
	ID string `json:"id" yaml:"id"`

	// Template is the name of the validated instance template.
	Template string `json:"template" yaml:"template"`

	// Metadata carries timestamp and validator version.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Summary Summary `json:"summary" yaml:"summary"`

	// Failures lists every accumulated record in check order.
	Failures []FailureRecord `json:"results,omitempty" yaml:"results,omitempty"`
}

// NewReport builds a Report from the accumulator contents of one pass.
func NewReport(name string, acc *Accumulator, duration time.Duration, version string) *Report {
	status := ReportStatusPass
	if acc.HasFailures() {
		status = ReportStatusFail
	}

	metadata := map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		metadata["version"] = version
	}

	return &Report{
		Kind:       KindValidationReport,
		APIVersion: APIVersion,
		ID:         uuid.NewString(),
		Template:   name,
		Metadata:   metadata,
		Summary: Summary{
			Failures: acc.Len(),
			Status:   status,
			Duration: duration,
		},
		Failures: acc.Records(),
	}
}
