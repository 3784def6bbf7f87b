// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"

	"github.com/aclements/binomsim/explorer"
	"github.com/aclements/binomsim/series"
)

// Middleware decorates a Service.
type Middleware func(Service) Service

// LoggingMiddleware logs every call with its parameters, duration and
// error.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger *slog.Logger
	next   Service
}

func (mw loggingMiddleware) log(ctx context.Context, method string, p explorer.Params, begin time.Time, err error) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	mw.logger.Log(ctx, level, "call",
		"method", method,
		"n", p.N, "p", p.P, "sample_size", p.SampleSize, "confidence", p.ConfidenceLevel,
		"took", time.Since(begin),
		"err", err)
}

func (mw loggingMiddleware) Statistics(ctx context.Context, p explorer.Params) (st explorer.Statistics, err error) {
	defer func(begin time.Time) { mw.log(ctx, "statistics", p, begin, err) }(time.Now())
	return mw.next.Statistics(ctx, p)
}

func (mw loggingMiddleware) Binomial(ctx context.Context, p explorer.Params) (pts []series.DistributionPoint, err error) {
	defer func(begin time.Time) { mw.log(ctx, "binomial", p, begin, err) }(time.Now())
	return mw.next.Binomial(ctx, p)
}

func (mw loggingMiddleware) Normal(ctx context.Context, p explorer.Params) (pts []series.NormalPoint, err error) {
	defer func(begin time.Time) { mw.log(ctx, "normal", p, begin, err) }(time.Now())
	return mw.next.Normal(ctx, p)
}

func (mw loggingMiddleware) Region(ctx context.Context, p explorer.Params) (r series.Region, err error) {
	defer func(begin time.Time) { mw.log(ctx, "region", p, begin, err) }(time.Now())
	return mw.next.Region(ctx, p)
}

func (mw loggingMiddleware) Snapshot(ctx context.Context, p explorer.Params) (s explorer.Snapshot, err error) {
	defer func(begin time.Time) { mw.log(ctx, "snapshot", p, begin, err) }(time.Now())
	return mw.next.Snapshot(ctx, p)
}

// InstrumentingMiddleware records request counts, latencies and
// series sizes, registering its collectors with reg.
func InstrumentingMiddleware(reg stdprometheus.Registerer) Middleware {
	fieldKeys := []string{"method", "error"}
	requestCount := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: "binomsim",
		Subsystem: "api",
		Name:      "request_count",
		Help:      "Number of requests received.",
	}, fieldKeys)
	requestLatency := stdprometheus.NewHistogramVec(stdprometheus.HistogramOpts{
		Namespace: "binomsim",
		Subsystem: "api",
		Name:      "request_latency_seconds",
		Help:      "Total duration of requests in seconds.",
		Buckets:   stdprometheus.DefBuckets,
	}, fieldKeys)
	seriesPoints := stdprometheus.NewHistogramVec(stdprometheus.HistogramOpts{
		Namespace: "binomsim",
		Subsystem: "api",
		Name:      "series_points",
		Help:      "Number of points in each returned series.",
		Buckets:   []float64{0, 1, 10, 50, 100, 200, 500, 1000},
	}, []string{"method"})
	reg.MustRegister(requestCount, requestLatency, seriesPoints)

	return func(next Service) Service {
		return instrumentingMiddleware{
			requestCount:   kitprometheus.NewCounter(requestCount),
			requestLatency: kitprometheus.NewHistogram(requestLatency),
			seriesPoints:   kitprometheus.NewHistogram(seriesPoints),
			next:           next,
		}
	}
}

type instrumentingMiddleware struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	seriesPoints   metrics.Histogram
	next           Service
}

func (mw instrumentingMiddleware) observe(method string, begin time.Time, err error) {
	lvs := []string{"method", method, "error", strconv.FormatBool(err != nil)}
	mw.requestCount.With(lvs...).Add(1)
	mw.requestLatency.With(lvs...).Observe(time.Since(begin).Seconds())
}

func (mw instrumentingMiddleware) points(method string, n int) {
	mw.seriesPoints.With("method", method).Observe(float64(n))
}

func (mw instrumentingMiddleware) Statistics(ctx context.Context, p explorer.Params) (st explorer.Statistics, err error) {
	defer func(begin time.Time) { mw.observe("statistics", begin, err) }(time.Now())
	return mw.next.Statistics(ctx, p)
}

func (mw instrumentingMiddleware) Binomial(ctx context.Context, p explorer.Params) (pts []series.DistributionPoint, err error) {
	defer func(begin time.Time) {
		mw.observe("binomial", begin, err)
		if err == nil {
			mw.points("binomial", len(pts))
		}
	}(time.Now())
	return mw.next.Binomial(ctx, p)
}

func (mw instrumentingMiddleware) Normal(ctx context.Context, p explorer.Params) (pts []series.NormalPoint, err error) {
	defer func(begin time.Time) {
		mw.observe("normal", begin, err)
		if err == nil {
			mw.points("normal", len(pts))
		}
	}(time.Now())
	return mw.next.Normal(ctx, p)
}

func (mw instrumentingMiddleware) Region(ctx context.Context, p explorer.Params) (r series.Region, err error) {
	defer func(begin time.Time) {
		mw.observe("region", begin, err)
		if err == nil {
			mw.points("region", len(r.Points))
		}
	}(time.Now())
	return mw.next.Region(ctx, p)
}

func (mw instrumentingMiddleware) Snapshot(ctx context.Context, p explorer.Params) (s explorer.Snapshot, err error) {
	defer func(begin time.Time) { mw.observe("snapshot", begin, err) }(time.Now())
	return mw.next.Snapshot(ctx, p)
}
