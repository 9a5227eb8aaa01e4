/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "azval_validations_total",
			Help: "Total number of template validation passes",
		},
	)

	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "azval_validation_duration_seconds",
			Help:    "Duration of template validation passes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	checkFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azval_check_failures_total",
			Help: "Total number of failed validation checks by configuration field",
		},
		[]string{"field"},
	)

	genericFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "azval_generic_failures_total",
			Help: "Total number of unclassified failures reported generically",
		},
	)

	panicRecoveriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "azval_panic_recoveries_total",
			Help: "Total number of panics recovered during remote validation",
		},
	)
)
