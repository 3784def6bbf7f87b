// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes the binomial explorer computations over
// HTTP as JSON.
package server

import (
	"context"

	"github.com/aclements/binomsim/explorer"
	"github.com/aclements/binomsim/series"
)

// Service computes derived groups for a set of parameters. Every
// method validates its parameters first and returns an error wrapping
// explorer.ErrOutOfDomain if they are invalid.
type Service interface {
	Statistics(ctx context.Context, p explorer.Params) (explorer.Statistics, error)
	Binomial(ctx context.Context, p explorer.Params) ([]series.DistributionPoint, error)
	Normal(ctx context.Context, p explorer.Params) ([]series.NormalPoint, error)
	Region(ctx context.Context, p explorer.Params) (series.Region, error)
	Snapshot(ctx context.Context, p explorer.Params) (explorer.Snapshot, error)
}

// NewService returns the stateless Service implementation.
func NewService() Service {
	return service{}
}

type service struct{}

func (service) Statistics(_ context.Context, p explorer.Params) (explorer.Statistics, error) {
	if err := p.Validate(); err != nil {
		return explorer.Statistics{}, err
	}
	return explorer.ComputeStatistics(p), nil
}

func (service) Binomial(_ context.Context, p explorer.Params) ([]series.DistributionPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return series.Binomial(p.N, p.P), nil
}

func (service) Normal(_ context.Context, p explorer.Params) ([]series.NormalPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	st := explorer.ComputeStatistics(p)
	return series.Normal(p.N, st.Mean, st.StdDev), nil
}

func (service) Region(_ context.Context, p explorer.Params) (series.Region, error) {
	if err := p.Validate(); err != nil {
		return series.Region{}, err
	}
	st := explorer.ComputeStatistics(p)
	return series.ConfidenceRegion(p.ConfidenceLevel, st.StdDev, p.SampleSize), nil
}

func (service) Snapshot(_ context.Context, p explorer.Params) (explorer.Snapshot, error) {
	if err := p.Validate(); err != nil {
		return explorer.Snapshot{}, err
	}
	return explorer.Compute(p), nil
}
