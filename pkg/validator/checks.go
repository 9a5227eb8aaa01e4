/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/provisio/azure-template-validator/pkg/errors"
	"github.com/provisio/azure-template-validator/pkg/lookup"
	"github.com/provisio/azure-template-validator/pkg/template"
)

// checkVMSize verifies the requested VM size is a member of the supported
// size list. Membership is case-sensitive exact match; no fuzzy matching.
func (v *Validator) checkVMSize(cfg template.Configured, acc *Accumulator,
	loc *template.LocalizationContext) {
	vmSize := cfg.Get(template.TokenVMSize)
	if slices.Contains(v.cfg.SupportedSizes, vmSize) {
		return
	}

	if closest := NearestSupportedSize(vmSize, v.cfg.SupportedSizes); closest != "" {
		slog.Debug("unsupported VM size", "size", vmSize, "closest", closest)
	}
	addError(acc, template.TokenVMSize, loc, msgVirtualMachine, vmSize)
}

// checkFQDNSuffix verifies the host FQDN suffix satisfies the configured DNS
// name requirement. Search semantics: a match anywhere in the value passes.
func (v *Validator) checkFQDNSuffix(cfg template.Configured, acc *Accumulator,
	loc *template.LocalizationContext) {
	suffix := cfg.Get(template.TokenHostFQDNSuffix)
	if v.fqdnSuffixRe.MatchString(suffix) {
		return
	}
	addError(acc, template.TokenHostFQDNSuffix, loc, msgFQDNSuffix, suffix, v.cfg.FQDNSuffixRegex)
}

// checkInstancePrefix verifies the instance name prefix satisfies the
// configured DNS label requirement. Same search semantics as checkFQDNSuffix.
func (v *Validator) checkInstancePrefix(cfg template.Configured, acc *Accumulator,
	loc *template.LocalizationContext) {
	prefix := cfg.Get(template.TokenInstanceNamePrefix)
	if v.dnsLabelRe.MatchString(prefix) {
		return
	}
	addError(acc, template.TokenInstanceNamePrefix, loc, msgInstanceNamePrefix, prefix, v.cfg.DNSLabelRegex)
}

// checkExists runs one remote existence lookup and classifies its outcome:
// communication failures get the generic communication message, every other
// classified failure gets the check-specific absence message. Unclassified
// errors are returned to the orchestrator for generic handling.
//
// The record is scoped to token even when the lookup also consumed other
// configuration values (e.g. the parent resource group name).
func (v *Validator) checkExists(acc *Accumulator, loc *template.LocalizationContext,
	token template.Token, absentMsg string, args []any, fetch func() error) error {
	err := fetch()
	if err == nil {
		return nil
	}

	code, ok := errors.CodeOf(err)
	if !ok {
		return err
	}

	slog.Debug("existence check failed", "field", token.String(), "code", code, "error", err)

	if code == errors.ErrCodeCommunication {
		addError(acc, token, loc, msgCommunication, args[0])
		return nil
	}
	addError(acc, token, loc, absentMsg, args...)
	return nil
}

// checkResourceGroup verifies the compute resource group exists.
func (v *Validator) checkResourceGroup(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	rgName := cfg.Get(template.TokenComputeResourceGroup)

	return v.checkExists(acc, loc, template.TokenComputeResourceGroup,
		msgResourceGroup, []any{rgName},
		func() error {
			_, err := port.ResourceGroup(ctx, rgName)
			return err
		})
}

// checkVirtualNetworkResourceGroup verifies the resource group the virtual
// network is looked up in exists. For the virtual network - as for the
// network security group - the resource group is specified separately from
// the compute resource group.
func (v *Validator) checkVirtualNetworkResourceGroup(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	vnrgName := cfg.Get(template.TokenVirtualNetworkResourceGroup)

	return v.checkExists(acc, loc, template.TokenVirtualNetworkResourceGroup,
		msgVirtualNetworkResourceGroup, []any{vnrgName},
		func() error {
			_, err := port.ResourceGroup(ctx, vnrgName)
			return err
		})
}

// checkVirtualNetwork verifies the virtual network exists within its
// resource group.
func (v *Validator) checkVirtualNetwork(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	vnName := cfg.Get(template.TokenVirtualNetwork)
	vnrgName := cfg.Get(template.TokenVirtualNetworkResourceGroup)

	return v.checkExists(acc, loc, template.TokenVirtualNetwork,
		msgVirtualNetwork, []any{vnName, vnrgName},
		func() error {
			_, err := port.VirtualNetwork(ctx, vnrgName, vnName)
			return err
		})
}

// checkSubnet verifies the subnet exists under the virtual network.
func (v *Validator) checkSubnet(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	vnName := cfg.Get(template.TokenVirtualNetwork)
	vnrgName := cfg.Get(template.TokenVirtualNetworkResourceGroup)
	subnetName := cfg.Get(template.TokenSubnetName)

	return v.checkExists(acc, loc, template.TokenSubnetName,
		msgSubnet, []any{subnetName, vnName},
		func() error {
			_, err := port.Subnet(ctx, vnrgName, vnName, subnetName)
			return err
		})
}

// checkNetworkSecurityGroupResourceGroup verifies the resource group the
// network security group is looked up in exists.
func (v *Validator) checkNetworkSecurityGroupResourceGroup(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	nsgrgName := cfg.Get(template.TokenNetworkSecurityGroupResourceGroup)

	return v.checkExists(acc, loc, template.TokenNetworkSecurityGroupResourceGroup,
		msgNetworkSecurityGroupResourceGroup, []any{nsgrgName},
		func() error {
			_, err := port.ResourceGroup(ctx, nsgrgName)
			return err
		})
}

// checkNetworkSecurityGroup verifies the network security group exists
// within its resource group.
func (v *Validator) checkNetworkSecurityGroup(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	nsgName := cfg.Get(template.TokenNetworkSecurityGroup)
	nsgrgName := cfg.Get(template.TokenNetworkSecurityGroupResourceGroup)

	return v.checkExists(acc, loc, template.TokenNetworkSecurityGroup,
		msgNetworkSecurityGroup, []any{nsgName, nsgrgName},
		func() error {
			_, err := port.NetworkSecurityGroup(ctx, nsgrgName, nsgName)
			return err
		})
}

// checkAvailabilitySet verifies the availability set exists within the
// compute resource group.
func (v *Validator) checkAvailabilitySet(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	asName := cfg.Get(template.TokenAvailabilitySet)
	computeRgName := cfg.Get(template.TokenComputeResourceGroup)

	return v.checkExists(acc, loc, template.TokenAvailabilitySet,
		msgAvailabilitySet, []any{asName},
		func() error {
			_, err := port.AvailabilitySet(ctx, computeRgName, asName)
			return err
		})
}
