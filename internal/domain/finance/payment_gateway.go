package finance

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/trade"
)

// ---------------------------------------------------------------------------
// Payment Gateway Errors
// ---------------------------------------------------------------------------

var (
	ErrPaymentInvalidAmount        = errors.New("payment: invalid payment amount")
	ErrPaymentInvalidTransactionID = errors.New("payment: invalid transaction id")
	ErrPaymentInvalidEmail         = errors.New("payment: customer email is required")
	ErrPaymentInvalidCallbackURL   = errors.New("payment: invalid callback URL")
	ErrPaymentInvalidCartItems     = errors.New("payment: cart items are not valid JSON")

	ErrGatewayNotConfigured   = errors.New("payment: gateway not configured")
	ErrGatewayRequestFailed   = errors.New("payment: gateway request failed")
	ErrGatewayInvalidResponse = errors.New("payment: invalid gateway response")
	ErrGatewaySessionRejected = errors.New("payment: gateway rejected session")
)

// Gateway status codes that mean the payment went through
const (
	GatewayStatusValid     = "VALID"
	GatewayStatusValidated = "VALIDATED"
)

// NormalizeStatus maps a raw gateway status onto an order status.
// Only the exact codes VALID and VALIDATED count as paid; everything else,
// including other casings, is failed.
func NormalizeStatus(raw string) trade.OrderStatus {
	switch strings.TrimSpace(raw) {
	case GatewayStatusValid, GatewayStatusValidated:
		return trade.StatusPaid
	default:
		return trade.StatusFailed
	}
}

// CallbackURLs are the server endpoints the gateway posts back to
type CallbackURLs struct {
	SuccessURL string
	FailURL    string
	CancelURL  string
	IPNURL     string
}

// CreatePaymentRequest starts a hosted checkout session
type CreatePaymentRequest struct {
	// TransactionID is our reference echoed back as tran_id
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	// CartItems travel through the gateway and come back on the callback
	CartItems []trade.LineItem
	Callbacks CallbackURLs
}

// Validate validates the create payment request
func (r *CreatePaymentRequest) Validate() error {
	if strings.TrimSpace(r.TransactionID) == "" {
		return ErrPaymentInvalidTransactionID
	}
	if !r.Amount.IsPositive() {
		return ErrPaymentInvalidAmount
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		return ErrPaymentInvalidEmail
	}
	if r.Callbacks.SuccessURL == "" || r.Callbacks.FailURL == "" || r.Callbacks.CancelURL == "" {
		return ErrPaymentInvalidCallbackURL
	}
	return nil
}

// CreatePaymentResponse carries the hosted page the customer is sent to
type CreatePaymentResponse struct {
	TransactionID string
	GatewayURL    string
	SessionKey    string
}

// PaymentCallback is a parsed gateway notification
type PaymentCallback struct {
	TransactionID string
	// ValidationID is the gateway's val_id for later validation calls
	ValidationID string
	// RawStatus is the gateway status as posted
	RawStatus string
	Amount    decimal.Decimal
	Currency  string
	CardType  string
	Email     string
	CartItems []trade.LineItem
}

// Status returns the normalized order status for this callback
func (c *PaymentCallback) Status() trade.OrderStatus {
	return NormalizeStatus(c.RawStatus)
}

// PaymentGateway is a hosted-checkout payment provider
type PaymentGateway interface {
	// CreatePayment opens a checkout session and returns the page URL
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error)

	// ParseCallback reads a form-encoded gateway post-back
	ParseCallback(ctx context.Context, form map[string][]string) (*PaymentCallback, error)
}
