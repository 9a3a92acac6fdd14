package navgraph

import (
	"context"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. Without a configured provider both are
// no-ops.
var (
	tracer = otel.Tracer("lvnav.navgraph")
	meter  = otel.Meter("lvnav.navgraph")
)

var (
	buildLatency metric.Float64Histogram
	buildTotal   metric.Int64Counter
	nodesCreated metric.Int64Histogram
	connsCreated metric.Int64Histogram
	queryLatency metric.Float64Histogram
	queryTotal   metric.Int64Counter
	pathPoints   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"navgraph_build_duration_seconds",
			metric.WithDescription("Duration of NavGraph construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"navgraph_build_total",
			metric.WithDescription("Total number of NavGraph constructions"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesCreated, err = meter.Int64Histogram(
			"navgraph_nodes_created",
			metric.WithDescription("Number of line nodes per NavGraph"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		connsCreated, err = meter.Int64Histogram(
			"navgraph_connections_created",
			metric.WithDescription("Number of connections per NavGraph, mirrors included"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryLatency, err = meter.Float64Histogram(
			"navgraph_query_duration_seconds",
			metric.WithDescription("Duration of path queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryTotal, err = meter.Int64Counter(
			"navgraph_query_total",
			metric.WithDescription("Total number of path queries by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathPoints, err = meter.Int64Histogram(
			"navgraph_path_points",
			metric.WithDescription("Number of points in returned paths"),
		)
		if err != nil {
			metricsErr = err
		}
	})

	return metricsErr
}

func recordBuildMetrics(ctx context.Context, d time.Duration, nodes, conns int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))

	buildLatency.Record(ctx, d.Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	if success {
		nodesCreated.Record(ctx, int64(nodes))
		connsCreated.Record(ctx, int64(conns))
	}
}

func recordQueryMetrics(ctx context.Context, outcome string, d time.Duration, points int) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	queryLatency.Record(ctx, d.Seconds(), attrs)
	queryTotal.Add(ctx, 1, attrs)
	if outcome == outcomeFound || outcome == outcomeSameTriangle {
		pathPoints.Record(ctx, int64(points))
	}
}

func startBuildSpan(ctx context.Context, triangles int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "NavGraph.Build",
		trace.WithAttributes(attribute.Int("navmesh.triangle_count", triangles)),
	)
}

func setBuildSpanResult(span trace.Span, nodes, conns int) {
	span.SetAttributes(
		attribute.Int("navgraph.node_count", nodes),
		attribute.Int("navgraph.connection_count", conns),
	)
}

func startQuerySpan(ctx context.Context, start, goal orb.Point) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Pathfinder.FindPath",
		trace.WithAttributes(
			attribute.Float64Slice("navgraph.start", start[:]),
			attribute.Float64Slice("navgraph.goal", goal[:]),
		),
	)
}

func setQuerySpanResult(span trace.Span, outcome string, points int, err error) {
	span.SetAttributes(
		attribute.String("navgraph.outcome", outcome),
		attribute.Int("navgraph.path_points", points),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
