/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/provisio/azure-template-validator/pkg/config"
	"github.com/provisio/azure-template-validator/pkg/images"
	"github.com/provisio/azure-template-validator/pkg/lookup"
	"github.com/provisio/azure-template-validator/pkg/template"
	"github.com/provisio/azure-template-validator/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate instance templates against their Azure backing resources",
		Description: `Validate one or more instance templates before provisioning.

Each template is checked in two phases. Local checks verify the template
against plugin configuration: the requested VM size must be supported, and
the host FQDN suffix and instance name prefix must match their configured
patterns. Remote checks then verify that every backing resource the template
references actually exists: the compute and network resource groups, the
virtual network and subnet, the network security group, the availability
set, and the VM image.

All problems found for a template are reported together; validation never
stops at the first failure. The result is one ValidationReport document per
template.

# Inputs

The images file maps logical image names to marketplace descriptors:

  ubuntu2404:
    publisher: Canonical
    offer: ubuntu-24_04-lts
    sku: server
    version: latest

The inventory file lists the Azure resources that exist, keyed by kind.
It stands in for live Azure lookups so validation can run offline or in CI.

# Examples

Validate a single template:
  azval validate -i images.yaml -n inventory.yaml -t workers.yaml

Validate several templates concurrently, failing the build on any error:
  azval validate -i images.yaml -n inventory.yaml \
    -t masters.yaml -t workers.yaml --fail-on-error

Write JSON reports to a file:
  azval validate -i images.yaml -n inventory.yaml -t workers.yaml \
    -f json -o reports.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to plugin configuration file (defaults apply when omitted)",
			},
			&cli.StringFlag{
				Name:     "images",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Path to the configurable images file mapping image names to marketplace descriptors",
			},
			&cli.StringFlag{
				Name:     "inventory",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "Path to the resource inventory file backing existence checks",
			},
			&cli.StringSliceFlag{
				Name:     "template",
				Aliases:  []string{"t"},
				Required: true,
				Usage:    "Path to an instance template file (can be repeated)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "Maximum number of templates validated concurrently (0 = unbounded)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any template fails validation",
			},
			outputFlag,
			formatFlag,
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration from %q: %w", path, err)
		}
	}

	imagesPath := cmd.String("images")
	reg, err := images.Load(imagesPath)
	if err != nil {
		return fmt.Errorf("failed to load images from %q: %w", imagesPath, err)
	}

	inventoryPath := cmd.String("inventory")
	inv, err := lookup.LoadInventory(inventoryPath)
	if err != nil {
		return fmt.Errorf("failed to load inventory from %q: %w", inventoryPath, err)
	}

	var provider lookup.Provider = inv
	if cfg.LookupRate > 0 {
		provider = lookup.RateLimited(inv,
			rate.NewLimiter(rate.Limit(cfg.LookupRate), cfg.LookupBurst))
	}

	v, err := validator.New(
		validator.WithConfig(cfg),
		validator.WithImages(reg),
		validator.WithPorts(provider),
		validator.WithVersion(version),
	)
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	templates := make(map[string]template.Configured)
	for _, path := range cmd.StringSlice("template") {
		tmpl, err := template.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load template from %q: %w", path, err)
		}
		templates[templateName(path)] = tmpl
	}

	slog.Info("validating templates",
		"count", len(templates),
		"location", cfg.Location,
		"images", reg.Len())

	start := time.Now()
	results := v.ValidateAll(ctx, templates, template.DefaultLocalizationContext(),
		int(cmd.Int("concurrency")))
	elapsed := time.Since(start)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	reports := make([]*validator.Report, 0, len(names))
	for _, name := range names {
		acc := results[name]
		if acc.HasFailures() {
			failed++
		}
		reports = append(reports, validator.NewReport(name, acc, elapsed, version))
	}

	if err := writeReports(outFormat, cmd.String("output"), reports); err != nil {
		return fmt.Errorf("failed to serialize validation reports: %w", err)
	}

	slog.Info("validation completed",
		"templates", len(templates),
		"failed", failed,
		"duration", elapsed)

	if cmd.Bool("fail-on-error") && failed > 0 {
		return fmt.Errorf("validation failed: %d of %d template(s) did not pass", failed, len(templates))
	}

	return nil
}
