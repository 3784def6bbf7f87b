// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aclements/binomsim/explorer"
)

// ErrBadRequest is returned for query parameters that cannot be
// parsed.
var ErrBadRequest = errors.New("bad request")

// MakeHTTPHandler routes the endpoints of s under /v1, plus /healthz
// and a /metrics page served from gatherer.
//
//	GET /v1/statistics      explorer.Statistics
//	GET /v1/series/binomial params and binomial points
//	GET /v1/series/normal   params and normal approximation points
//	GET /v1/series/region   series.Region
//	GET /v1/snapshot        explorer.Snapshot
//
// All /v1 routes take the query parameters n, p, sample_size and
// confidence. Missing parameters take their explorer.DefaultParams
// values.
func MakeHTTPHandler(s Service, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	e := MakeEndpoints(s)
	options := []httptransport.ServerOption{
		httptransport.ServerErrorHandler(errorHandler{logger}),
		httptransport.ServerErrorEncoder(encodeError),
	}

	handle := func(path string, ep endpoint.Endpoint) {
		r.Methods("GET").Path(path).Handler(httptransport.NewServer(
			ep,
			decodeParamsRequest,
			encodeResponse,
			options...,
		))
	}
	handle("/v1/statistics", e.Statistics)
	handle("/v1/series/binomial", e.Binomial)
	handle("/v1/series/normal", e.Normal)
	handle("/v1/series/region", e.Region)
	handle("/v1/snapshot", e.Snapshot)

	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Methods("GET").Path("/metrics").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func decodeParamsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	p := explorer.DefaultParams()
	q := r.URL.Query()
	ints := []struct {
		name string
		dst  *int
	}{
		{"n", &p.N},
		{"sample_size", &p.SampleSize},
		{"confidence", &p.ConfidenceLevel},
	}
	for _, f := range ints {
		s := q.Get(f.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadRequest, f.name, err)
		}
		*f.dst = v
	}
	if s := q.Get("p"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: p: %v", ErrBadRequest, err)
		}
		p.P = v
	}
	return paramsRequest{p}, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(codeFrom(err))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

func codeFrom(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, explorer.ErrOutOfDomain):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorHandler logs transport errors that are not the client's fault.
type errorHandler struct {
	logger *slog.Logger
}

var _ transport.ErrorHandler = errorHandler{}

func (h errorHandler) Handle(ctx context.Context, err error) {
	if codeFrom(err) == http.StatusBadRequest {
		return
	}
	h.logger.ErrorContext(ctx, "transport error", "err", err)
}
