package payment

import (
	"context"

	"github.com/storefront/backend/internal/domain/finance"
)

// DisabledGateway stands in when no gateway credentials are configured.
// Every call fails with finance.ErrGatewayNotConfigured.
type DisabledGateway struct{}

var _ finance.PaymentGateway = DisabledGateway{}

// CreatePayment implements finance.PaymentGateway
func (DisabledGateway) CreatePayment(context.Context, *finance.CreatePaymentRequest) (*finance.CreatePaymentResponse, error) {
	return nil, finance.ErrGatewayNotConfigured
}

// ParseCallback implements finance.PaymentGateway
func (DisabledGateway) ParseCallback(context.Context, map[string][]string) (*finance.PaymentCallback, error) {
	return nil, finance.ErrGatewayNotConfigured
}
