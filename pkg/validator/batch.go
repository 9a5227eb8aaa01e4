/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/provisio/azure-template-validator/pkg/template"
)

// ValidateAll validates several templates concurrently, up to the given
// concurrency limit (0 means unbounded). Every invocation gets its own
// accumulator and acquires its own lookup port, so no state is shared
// between concurrent passes. Results are keyed by template name.
func (v *Validator) ValidateAll(ctx context.Context, templates map[string]template.Configured,
	loc *template.LocalizationContext, concurrency int) map[string]*Accumulator {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]*Accumulator, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, name := range names {
		g.Go(func() error {
			acc := NewAccumulator()
			v.Validate(gctx, name, templates[name], acc, loc)
			results[i] = acc
			return nil
		})
	}

	// Validate never returns an error, so Wait only synchronizes.
	_ = g.Wait()

	out := make(map[string]*Accumulator, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out
}
