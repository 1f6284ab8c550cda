// SPDX-License-Identifier: MIT
// Package: bspmatch/telemetry
//
// Package telemetry exports per-run OpenTelemetry metrics over a
// Prometheus reader: superstep counts, instructions sent/received per
// tag, final matching size, and the superstep a phase reached
// quiescence on. Same Provider-over-sdkmetric shape, same
// resource/exporter wiring as a typical otel+Prometheus backend
// integration, retargeted from workflow/node execution counters to
// BSP superstep and instruction counters.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/katalvlaran/bspmatch/instruction"
)

const serviceName = "bspmatch"

// Meter records per-run BSP metrics and exposes them over the
// Prometheus exporter's default /metrics registry. engine.Config's
// Meter field is *Meter; a nil Meter disables all instrumentation, so
// every method on Meter below is a nil-receiver no-op.
type Meter struct {
	provider *sdkmetric.MeterProvider

	superstepCount    metric.Int64Counter
	instructionsSent  metric.Int64Counter
	instructionsRecvd metric.Int64Counter
	matchingSize      metric.Int64Gauge
	quiescenceRound   metric.Int64Gauge
}

// New creates a Meter with a Prometheus exporter reader, registering it
// as the module's metrics source for this process. runID tags every
// exported series with the run it belongs to, so metrics from two
// concurrent or successive runs scraped by the same Prometheus target
// don't blend together; pass "" if the caller has no run id to offer.
// Callers that do not want telemetry should pass a nil *Meter to
// engine.Config rather than calling New.
func New(ctx context.Context, pid int, runID string) (*Meter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			attribute.Int("bspmatch.pid", pid),
			attribute.String("bspmatch.run_id", runID),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: building resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	meterAPI := provider.Meter(serviceName)

	m := &Meter{provider: provider}
	if m.superstepCount, err = meterAPI.Int64Counter(
		"bsp.superstep.count",
		metric.WithDescription("Number of supersteps executed"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: superstep counter: %w", err)
	}
	if m.instructionsSent, err = meterAPI.Int64Counter(
		"bsp.instructions.sent",
		metric.WithDescription("Instructions enqueued for a remote process, by tag"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: instructions-sent counter: %w", err)
	}
	if m.instructionsRecvd, err = meterAPI.Int64Counter(
		"bsp.instructions.received",
		metric.WithDescription("Instructions applied from a remote process, by tag"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: instructions-received counter: %w", err)
	}
	if m.matchingSize, err = meterAPI.Int64Gauge(
		"bsp.matching.size",
		metric.WithDescription("Pairs recorded in this process's matching"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: matching-size gauge: %w", err)
	}
	if m.quiescenceRound, err = meterAPI.Int64Gauge(
		"bsp.quiescence.round",
		metric.WithDescription("Superstep index a phase reached global quiescence on"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: quiescence-round gauge: %w", err)
	}

	return m, nil
}

// RecordSuperstep records one superstep having executed for the named
// phase ("phase1" or "phase2").
func (m *Meter) RecordSuperstep(ctx context.Context, phase string) {
	if m == nil {
		return
	}
	m.superstepCount.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", phase)))
}

// RecordSent records one instruction of tag having been enqueued for a
// remote process.
func (m *Meter) RecordSent(ctx context.Context, tag instruction.Tag) {
	if m == nil {
		return
	}
	m.instructionsSent.Add(ctx, 1, metric.WithAttributes(attribute.String("tag", tag.String())))
}

// RecordReceived records one instruction of tag having been applied
// from a remote process.
func (m *Meter) RecordReceived(ctx context.Context, tag instruction.Tag) {
	if m == nil {
		return
	}
	m.instructionsRecvd.Add(ctx, 1, metric.WithAttributes(attribute.String("tag", tag.String())))
}

// RecordMatchingSize records the current size of this process's
// matching list.
func (m *Meter) RecordMatchingSize(ctx context.Context, size int) {
	if m == nil {
		return
	}
	m.matchingSize.Record(ctx, int64(size))
}

// RecordQuiescence records the superstep index at which phase reached
// global quiescence.
func (m *Meter) RecordQuiescence(ctx context.Context, phase string, round int) {
	if m == nil {
		return
	}
	m.quiescenceRound.Record(ctx, int64(round), metric.WithAttributes(attribute.String("phase", phase)))
}

// Shutdown flushes and releases the underlying meter provider. Safe to
// call on a nil Meter.
func (m *Meter) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	if err := m.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutting down meter provider: %w", err)
	}
	return nil
}
