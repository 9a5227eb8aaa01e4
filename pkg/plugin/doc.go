/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package plugin defines the contract between the Azure template validator
// and a provisioning host.
//
// # Overview
//
// A provisioning host discovers the validator through Metadata and invokes it
// through the ConfigurationValidator interface before allocating any cloud
// resources. The interface is intentionally narrow: one Validate call per
// template, all findings delivered through the accumulator, no error return.
//
// # Usage
//
//	v, err := validator.New(
//		validator.WithConfig(cfg),
//		validator.WithImages(reg),
//		validator.WithPorts(provider),
//	)
//	if err != nil {
//		return err
//	}
//	var cv plugin.ConfigurationValidator = v
//	acc := validator.NewAccumulator()
//	cv.Validate(ctx, "workers", tmpl, acc, nil)
package plugin
