package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics holds the request instruments used by the HTTP middleware.
type HTTPMetrics struct {
	requestTotal    *Counter
	requestDuration *Histogram
}

// NewHTTPMetrics creates http_requests_total and http_request_duration_seconds.
func NewHTTPMetrics(meter metric.Meter) (*HTTPMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	requestTotal, err := NewCounter(meter, "http_requests_total", "Total number of HTTP requests", "{request}")
	if err != nil {
		return nil, err
	}
	requestDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request latency distribution in seconds",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	return &HTTPMetrics{requestTotal: requestTotal, requestDuration: requestDuration}, nil
}

// RecordRequest records one finished request. route is the matched pattern,
// not the raw path, to keep cardinality bounded.
func (m *HTTPMetrics) RecordRequest(ctx context.Context, method, route string, status int, d time.Duration) {
	attrs := []attribute.KeyValue{
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatusCode.String(strconv.Itoa(status)),
	}
	m.requestTotal.Inc(ctx, attrs...)
	m.requestDuration.RecordDuration(ctx, d, attrs...)
}
