/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/provisio/azure-template-validator/pkg/config"
	"github.com/provisio/azure-template-validator/pkg/images"
	"github.com/provisio/azure-template-validator/pkg/lookup"
	"github.com/provisio/azure-template-validator/pkg/template"
)

// Validator checks that an instance template refers to resources that exist
// in the target cloud account before provisioning is attempted.
//
// A validation pass runs a fixed battery of independent checks and reports
// every failure through the Accumulator rather than stopping at the first.
// Validate never returns or raises business-level failures.
type Validator struct {
	cfg     *config.Config
	images  *images.Registry
	ports   lookup.Provider
	version string

	dnsLabelRe   *regexp.Regexp
	fqdnSuffixRe *regexp.Regexp
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithConfig returns an Option that sets the plugin configuration.
func WithConfig(cfg *config.Config) Option {
	return func(v *Validator) {
		if cfg != nil {
			v.cfg = cfg
		}
	}
}

// WithImages returns an Option that sets the configurable image registry.
func WithImages(reg *images.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.images = reg
		}
	}
}

// WithPorts returns an Option that sets the lookup port provider used for
// remote existence checks.
func WithPorts(p lookup.Provider) Option {
	return func(v *Validator) {
		v.ports = p
	}
}

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.version = version
	}
}

// New creates a new Validator with the provided options. A lookup Provider
// is required; the plugin configuration and image registry default to empty
// but functional values.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		cfg:    config.Default(),
		images: images.NewRegistry(nil),
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.ports == nil {
		return nil, fmt.Errorf("lookup provider is required")
	}

	var err error
	if v.dnsLabelRe, err = regexp.Compile(v.cfg.DNSLabelRegex); err != nil {
		return nil, fmt.Errorf("invalid DNS label pattern: %w", err)
	}
	if v.fqdnSuffixRe, err = regexp.Compile(v.cfg.FQDNSuffixRegex); err != nil {
		return nil, fmt.Errorf("invalid FQDN suffix pattern: %w", err)
	}

	return v, nil
}

// Validate runs the full check battery against one instance template and
// writes every failure into acc. Checks are independent: a failing check
// never prevents later checks from running. The remote existence checks are
// skipped as a group only when the lookup port cannot be acquired, which is
// reported as a single generic failure.
//
// Validate returns normally for every business-level outcome; the caller
// observes results by inspecting the accumulator.
func (v *Validator) Validate(ctx context.Context, name string, cfg template.Configured,
	acc *Accumulator, loc *template.LocalizationContext) {
	start := time.Now()
	validationsTotal.Inc()

	if loc == nil {
		loc = template.DefaultLocalizationContext()
	}

	slog.Debug("validating instance template", "name", name)

	// Local checks run unconditionally and never touch the lookup port.
	v.checkVMSize(cfg, acc, loc)
	v.checkFQDNSuffix(cfg, acc, loc)
	v.checkInstancePrefix(cfg, acc, loc)

	v.runRemoteChecks(ctx, cfg, acc, loc)

	validationDuration.Observe(time.Since(start).Seconds())
	slog.Debug("validation completed",
		"name", name,
		"failures", acc.Len(),
		"duration", time.Since(start))
}

type remoteCheckFn func(context.Context, lookup.Port, template.Configured,
	*Accumulator, *template.LocalizationContext) error

// runRemoteChecks acquires a fresh lookup port and runs the existence checks
// in fixed order. The port is acquired per call because it may hold a
// short-lived authorization token that must not be reused across a long
// validation run.
//
// Failures the individual checks could not classify, port acquisition
// failures, and panics all collapse into one generic unscoped record so the
// host always gets a report instead of an unhandled failure.
func (v *Validator) runRemoteChecks(ctx context.Context, cfg template.Configured,
	acc *Accumulator, loc *template.LocalizationContext) {
	defer func() {
		if r := recover(); r != nil {
			panicRecoveriesTotal.Inc()
			slog.Error("panic recovered during remote validation", "panic", r)
			v.addGeneric(acc, loc)
		}
	}()

	port, err := v.ports.Acquire(ctx)
	if err != nil {
		slog.Error("failed to acquire resource lookup port", "error", err)
		v.addGeneric(acc, loc)
		return
	}

	checks := []remoteCheckFn{
		v.checkResourceGroup,
		v.checkVirtualNetworkResourceGroup,
		v.checkVirtualNetwork,
		v.checkSubnet,
		v.checkNetworkSecurityGroupResourceGroup,
		v.checkNetworkSecurityGroup,
		v.checkAvailabilitySet,
		v.checkVMImage,
	}

	for _, check := range checks {
		if err := check(ctx, port, cfg, acc, loc); err != nil {
			slog.Error("unclassified failure during remote validation", "error", err)
			v.addGeneric(acc, loc)
			return
		}
	}
}

// addError localizes a message template and appends one scoped failure record.
func addError(acc *Accumulator, token template.Token, loc *template.LocalizationContext,
	format string, args ...any) {
	field := "generic"
	if token != "" {
		field = token.String()
	}
	checkFailuresTotal.WithLabelValues(field).Inc()
	acc.Add(token, loc.Localize(format, args...))
}

// addGeneric appends the single unscoped record used for unclassified failures.
func (v *Validator) addGeneric(acc *Accumulator, loc *template.LocalizationContext) {
	genericFailuresTotal.Inc()
	addError(acc, "", loc, msgGeneric)
}
