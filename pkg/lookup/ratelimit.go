/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package lookup

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/provisio/azure-template-validator/pkg/errors"
	"github.com/provisio/azure-template-validator/pkg/images"
)

// RateLimited wraps a Provider so every Port it hands out shares one token
// bucket. Azure throttles management API calls per subscription, so the
// limiter is provider-wide rather than per acquired Port.
func RateLimited(p Provider, limiter *rate.Limiter) Provider {
	return ProviderFunc(func(ctx context.Context) (Port, error) {
		port, err := p.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return &rateLimitedPort{port: port, limiter: limiter}, nil
	})
}

type rateLimitedPort struct {
	port    Port
	limiter *rate.Limiter
}

func (r *rateLimitedPort) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeCommunication, "lookup rate limiter interrupted", err)
	}
	return nil
}

func (r *rateLimitedPort) ResourceGroup(ctx context.Context, name string) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.ResourceGroup(ctx, name)
}

func (r *rateLimitedPort) VirtualNetwork(ctx context.Context, rgName, vnName string) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.VirtualNetwork(ctx, rgName, vnName)
}

func (r *rateLimitedPort) Subnet(ctx context.Context, rgName, vnName, subnetName string) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.Subnet(ctx, rgName, vnName, subnetName)
}

func (r *rateLimitedPort) NetworkSecurityGroup(ctx context.Context, rgName, nsgName string) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.NetworkSecurityGroup(ctx, rgName, nsgName)
}

func (r *rateLimitedPort) AvailabilitySet(ctx context.Context, rgName, asName string) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.AvailabilitySet(ctx, rgName, asName)
}

func (r *rateLimitedPort) MarketplaceImage(ctx context.Context, location string, desc images.Descriptor) (*Resource, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.port.MarketplaceImage(ctx, location, desc)
}
