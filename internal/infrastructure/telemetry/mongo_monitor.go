package telemetry

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DBMonitorConfig holds configuration for MongoDB command tracing and metrics.
type DBMonitorConfig struct {
	// SlowQueryThreshold marks commands as slow (default: 200ms).
	SlowQueryThreshold time.Duration
}

// internal driver chatter that is neither traced nor counted
var ignoredCommands = map[string]bool{
	"hello":        true,
	"ismaster":     true,
	"saslstart":    true,
	"saslcontinue": true,
	"buildinfo":    true,
	"endsessions":  true,
	"killcursors":  true,
}

// DBMonitor observes driver commands: one client span and one
// db_query_total/db_query_duration_seconds sample per command.
type DBMonitor struct {
	tracer         trace.Tracer
	queryTotal     *Counter
	queryDuration  *Histogram
	slowQueryTotal *Counter
	config         DBMonitorConfig
	logger         *zap.Logger

	inflight sync.Map // request id -> trace.Span
}

// NewDBMonitor creates a DBMonitor with the given tracer and meter.
func NewDBMonitor(tracer trace.Tracer, meter metric.Meter, cfg DBMonitorConfig, logger *zap.Logger) (*DBMonitor, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SlowQueryThreshold == 0 {
		cfg.SlowQueryThreshold = 200 * time.Millisecond
	}

	queryTotal, err := NewCounter(meter, "db_query_total", "Total number of database commands by operation", "{query}")
	if err != nil {
		return nil, err
	}
	queryDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database command latency distribution in seconds",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	slowQueryTotal, err := NewCounter(meter, "db_slow_query_total", "Total number of slow database commands", "{query}")
	if err != nil {
		return nil, err
	}

	return &DBMonitor{
		tracer:         tracer,
		queryTotal:     queryTotal,
		queryDuration:  queryDuration,
		slowQueryTotal: slowQueryTotal,
		config:         cfg,
		logger:         logger,
	}, nil
}

// CommandMonitor returns the driver hook to pass to the client options.
func (m *DBMonitor) CommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started:   m.started,
		Succeeded: m.succeeded,
		Failed:    m.failed,
	}
}

func (m *DBMonitor) started(ctx context.Context, evt *event.CommandStartedEvent) {
	if ignoredCommands[strings.ToLower(evt.CommandName)] || m.tracer == nil {
		return
	}
	collection, _ := evt.Command.Lookup(evt.CommandName).StringValueOK()
	_, span := m.tracer.Start(ctx, "mongodb."+evt.CommandName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system.name", "mongodb"),
			attribute.String("db.namespace", evt.DatabaseName),
			AttrDBOperation.String(evt.CommandName),
			AttrDBCollection.String(collection),
		),
	)
	m.inflight.Store(evt.RequestID, span)
}

func (m *DBMonitor) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	m.finish(ctx, evt.CommandFinishedEvent, "")
}

func (m *DBMonitor) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	m.finish(ctx, evt.CommandFinishedEvent, evt.Failure)
}

func (m *DBMonitor) finish(ctx context.Context, evt event.CommandFinishedEvent, failure string) {
	if ignoredCommands[strings.ToLower(evt.CommandName)] {
		return
	}

	attrs := []attribute.KeyValue{AttrDBOperation.String(evt.CommandName)}
	m.queryTotal.Inc(ctx, attrs...)
	m.queryDuration.RecordDuration(ctx, evt.Duration, attrs...)

	slow := evt.Duration >= m.config.SlowQueryThreshold
	if slow {
		m.slowQueryTotal.Inc(ctx, attrs...)
		m.logger.Warn("Slow database command",
			zap.String("command", evt.CommandName),
			zap.String("database", evt.DatabaseName),
			zap.Duration("duration", evt.Duration))
	}

	v, ok := m.inflight.LoadAndDelete(evt.RequestID)
	if !ok {
		return
	}
	span := v.(trace.Span)
	if slow {
		span.SetAttributes(attribute.Bool("db.slow_query", true))
	}
	if failure != "" {
		span.SetStatus(codes.Error, failure)
	}
	span.End()
}
