/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package validator implements instance template validation against a cloud
// provider account: it verifies that the VM size, networking resources,
// resource groups, availability set, image, and naming properties an
// instance template names actually exist (or satisfy local requirements)
// before provisioning is attempted.
//
// # Check battery
//
// A validation pass runs a fixed sequence of independent checks:
//
//  1. Local checks (no remote calls): VM size membership, FQDN suffix
//     pattern, instance name prefix pattern.
//  2. Remote existence checks, run over a lookup port acquired fresh for
//     the pass: compute resource group, virtual network resource group,
//     virtual network, subnet, network security group resource group,
//     network security group, availability set, VM image.
//
// Every failing check appends exactly one FailureRecord to the Accumulator
// and never prevents later checks from running. The host inspects the
// accumulator after Validate returns; Validate itself never surfaces
// business-level failures as errors.
//
// # Failure classification
//
// Remote lookups report classified errors (pkg/errors codes). Each check
// maps the classification to one of its message templates: communication
// failures get a generic "cannot communicate" message so transient outages
// are distinguishable from real misconfiguration; everything else gets a
// resource-specific, actionable message. Failures outside the taxonomy -
// including port acquisition failures and recovered panics - collapse into
// a single unscoped generic record.
//
// # Usage
//
//	v, err := validator.New(
//	    validator.WithConfig(cfg),
//	    validator.WithImages(registry),
//	    validator.WithPorts(provider),
//	)
//	if err != nil {
//	    return err
//	}
//
//	acc := validator.NewAccumulator()
//	v.Validate(ctx, "workers", tmpl, acc, loc)
//	for _, rec := range acc.Records() {
//	    fmt.Printf("%s: %s\n", rec.Token, rec.Message)
//	}
package validator
