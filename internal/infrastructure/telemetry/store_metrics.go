package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// StoreMetrics records storefront business events: stock movements,
// interrupted multi-step operations, coupon applications and payments.
type StoreMetrics struct {
	stockDecrements *Counter
	sagaFailures    *Counter
	couponApplied   *Counter
	payments        *Counter
	logger          *zap.Logger
}

// NewStoreMetrics creates the business instruments on meter.
func NewStoreMetrics(meter metric.Meter, logger *zap.Logger) (*StoreMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	stockDecrements, err := NewCounter(meter, "store_stock_decremented_units_total",
		"Units of stock removed by fulfilled orders and POS sales", "{units}")
	if err != nil {
		return nil, err
	}
	sagaFailures, err := NewCounter(meter, "store_saga_failures_total",
		"Multi-step operations that stopped partway", "{operations}")
	if err != nil {
		return nil, err
	}
	couponApplied, err := NewCounter(meter, "store_coupon_apply_total",
		"Coupon apply requests by outcome", "{requests}")
	if err != nil {
		return nil, err
	}
	payments, err := NewCounter(meter, "store_payment_total",
		"Hosted checkout events by outcome", "{payments}")
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{
		stockDecrements: stockDecrements,
		sagaFailures:    sagaFailures,
		couponApplied:   couponApplied,
		payments:        payments,
		logger:          logger,
	}, nil
}

// RecordStockDecrement counts units removed from stock.
func (m *StoreMetrics) RecordStockDecrement(ctx context.Context, source string, quantity int) {
	m.stockDecrements.Add(ctx, int64(quantity), AttrOrderType.String(source))
}

// RecordSagaFailure counts a multi-step operation that stopped at step.
func (m *StoreMetrics) RecordSagaFailure(ctx context.Context, operation, step string) {
	m.sagaFailures.Inc(ctx, AttrSagaOperation.String(operation), AttrSagaStep.String(step))
	m.logger.Warn("Multi-step operation stopped partway",
		zap.String("operation", operation),
		zap.String("step", step))
}

// RecordCouponApplied counts a coupon apply request.
func (m *StoreMetrics) RecordCouponApplied(ctx context.Context, outcome string) {
	m.couponApplied.Inc(ctx, AttrCouponOutcome.String(outcome))
}

// RecordPayment counts a checkout event.
func (m *StoreMetrics) RecordPayment(ctx context.Context, outcome string) {
	m.payments.Inc(ctx, AttrPaymentStatus.String(outcome))
}
