// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/aclements/binomsim/explorer"
	"github.com/aclements/binomsim/series"
)

// Endpoints collects one endpoint per Service method.
type Endpoints struct {
	Statistics endpoint.Endpoint
	Binomial   endpoint.Endpoint
	Normal     endpoint.Endpoint
	Region     endpoint.Endpoint
	Snapshot   endpoint.Endpoint
}

// MakeEndpoints wraps each method of s in an endpoint. Every endpoint
// takes a paramsRequest.
func MakeEndpoints(s Service) Endpoints {
	return Endpoints{
		Statistics: func(ctx context.Context, request interface{}) (interface{}, error) {
			req := request.(paramsRequest)
			return s.Statistics(ctx, req.Params)
		},
		Binomial: func(ctx context.Context, request interface{}) (interface{}, error) {
			req := request.(paramsRequest)
			pts, err := s.Binomial(ctx, req.Params)
			if err != nil {
				return nil, err
			}
			return binomialResponse{Params: req.Params, Points: pts}, nil
		},
		Normal: func(ctx context.Context, request interface{}) (interface{}, error) {
			req := request.(paramsRequest)
			pts, err := s.Normal(ctx, req.Params)
			if err != nil {
				return nil, err
			}
			return normalResponse{Params: req.Params, Points: pts}, nil
		},
		Region: func(ctx context.Context, request interface{}) (interface{}, error) {
			req := request.(paramsRequest)
			return s.Region(ctx, req.Params)
		},
		Snapshot: func(ctx context.Context, request interface{}) (interface{}, error) {
			req := request.(paramsRequest)
			return s.Snapshot(ctx, req.Params)
		},
	}
}

type paramsRequest struct {
	explorer.Params
}

type binomialResponse struct {
	Params explorer.Params            `json:"params"`
	Points []series.DistributionPoint `json:"points"`
}

type normalResponse struct {
	Params explorer.Params      `json:"params"`
	Points []series.NormalPoint `json:"points"`
}
