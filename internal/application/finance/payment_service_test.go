package finance

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mocks
// ============================================================================

// MockPaymentGateway is a mock implementation of finance.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, req *finance.CreatePaymentRequest) (*finance.CreatePaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CreatePaymentResponse), args.Error(1)
}

func (m *MockPaymentGateway) ParseCallback(ctx context.Context, form map[string][]string) (*finance.PaymentCallback, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentCallback), args.Error(1)
}

type outcomeRecorder struct{ outcomes []string }

func (r *outcomeRecorder) RecordPayment(_ context.Context, outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

// ============================================================================
// Helpers
// ============================================================================

var testLines = []trade.LineItem{{ProductID: "6650a1b2c3d4e5f601234567", Name: "Shirt", Price: 50, Quantity: 2}}

func newPaymentService(gw *MockPaymentGateway) (*PaymentService, *memory.OrderRepository, *outcomeRecorder) {
	orders := memory.NewOrderRepository()
	rec := &outcomeRecorder{}
	svc := NewPaymentService(gw, orders, PaymentServiceConfig{
		Currency:    "BDT",
		ServerURL:   "https://api.example.com/",
		FrontendURL: "https://shop.example.com",
	}, nil).WithRecorder(rec)
	svc.newTranID = func() string { return "tran-1" }
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc, orders, rec
}

// ============================================================================
// Tests
// ============================================================================

func TestPaymentService_Init(t *testing.T) {
	ctx := context.Background()
	gw := new(MockPaymentGateway)
	svc, _, rec := newPaymentService(gw)

	gw.On("CreatePayment", ctx, mock.MatchedBy(func(req *finance.CreatePaymentRequest) bool {
		return req.TransactionID == "tran-1" &&
			req.Amount.Equal(decimal.NewFromInt(100)) &&
			req.Currency == "BDT" &&
			req.CustomerEmail == "buyer@example.com" &&
			len(req.CartItems) == 1 &&
			req.Callbacks.SuccessURL == "https://api.example.com/sslcommerz/success" &&
			req.Callbacks.FailURL == "https://api.example.com/sslcommerz/fail" &&
			req.Callbacks.CancelURL == "https://api.example.com/sslcommerz/cancel" &&
			req.Callbacks.IPNURL == "https://api.example.com/sslcommerz/ipn"
	})).Return(&finance.CreatePaymentResponse{TransactionID: "tran-1", GatewayURL: "https://gw.example.com/pay/abc"}, nil)

	resp, err := svc.Init(ctx, InitPaymentRequest{Total: 100, Email: "buyer@example.com", CartItems: testLines})
	require.NoError(t, err)
	assert.Equal(t, "https://gw.example.com/pay/abc", resp.URL)
	assert.Equal(t, "tran-1", resp.TransactionID)
	assert.Equal(t, []string{OutcomeInitiated}, rec.outcomes)
	gw.AssertExpectations(t)
}

func TestPaymentService_Init_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty cart", func(t *testing.T) {
		gw := new(MockPaymentGateway)
		svc, _, _ := newPaymentService(gw)
		_, err := svc.Init(ctx, InitPaymentRequest{Total: 100, Email: "buyer@example.com"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		gw.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		gw := new(MockPaymentGateway)
		svc, _, _ := newPaymentService(gw)
		_, err := svc.Init(ctx, InitPaymentRequest{Email: "buyer@example.com", CartItems: testLines})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("wraps gateway failure", func(t *testing.T) {
		gw := new(MockPaymentGateway)
		svc, _, rec := newPaymentService(gw)
		gw.On("CreatePayment", ctx, mock.Anything).Return(nil, finance.ErrGatewaySessionRejected)

		_, err := svc.Init(ctx, InitPaymentRequest{Total: 100, Email: "buyer@example.com", CartItems: testLines})
		require.Error(t, err)
		assert.True(t, errors.Is(err, finance.ErrGatewaySessionRejected))
		assert.Empty(t, rec.outcomes)
	})
}

func TestPaymentService_HandleSuccess(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		rawStatus  string
		wantStatus trade.OrderStatus
		wantURL    string
		wantRecord string
	}{
		{"valid is paid", "VALID", trade.StatusPaid, "https://shop.example.com/payment-success?tran_id=tran-9", OutcomePaid},
		{"validated is paid", "VALIDATED", trade.StatusPaid, "https://shop.example.com/payment-success?tran_id=tran-9", OutcomePaid},
		{"codes are case sensitive", "valid", trade.StatusFailed, "https://shop.example.com/payment-fail?tran_id=tran-9", OutcomeFailed},
		{"anything else is failed", "FAILED", trade.StatusFailed, "https://shop.example.com/payment-fail?tran_id=tran-9", OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockPaymentGateway)
			svc, orders, rec := newPaymentService(gw)
			form := url.Values{"tran_id": {"tran-9"}, "status": {tt.rawStatus}}
			gw.On("ParseCallback", ctx, mock.Anything).Return(&finance.PaymentCallback{
				TransactionID: "tran-9",
				RawStatus:     tt.rawStatus,
				Amount:        decimal.NewFromInt(100),
				Email:         "buyer@example.com",
				CartItems:     testLines,
			}, nil)

			redirect, err := svc.HandleSuccess(ctx, form)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, redirect)
			assert.Equal(t, []string{tt.wantRecord}, rec.outcomes)

			stored, err := orders.FindAll(ctx, shared.Filter{})
			require.NoError(t, err)
			require.Len(t, stored, 1)
			assert.Equal(t, tt.wantStatus, stored[0].Status)
			assert.Equal(t, "tran-9", stored[0].TransactionID)
			assert.Equal(t, "buyer@example.com", stored[0].Email)
			assert.Equal(t, shared.Amount(100), stored[0].Total)
			assert.Equal(t, trade.OrderTypeOnline, stored[0].OrderType)
			assert.Len(t, stored[0].CartItems, 1)
		})
	}
}

func TestPaymentService_HandleSuccess_BadCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("missing transaction id", func(t *testing.T) {
		gw := new(MockPaymentGateway)
		svc, orders, _ := newPaymentService(gw)
		gw.On("ParseCallback", ctx, mock.Anything).Return(nil, finance.ErrPaymentInvalidTransactionID)

		_, err := svc.HandleSuccess(ctx, url.Values{})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Equal(t, "Transaction ID missing", err.Error())

		stored, err := orders.FindAll(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("malformed cart items", func(t *testing.T) {
		gw := new(MockPaymentGateway)
		svc, _, _ := newPaymentService(gw)
		gw.On("ParseCallback", ctx, mock.Anything).Return(nil, finance.ErrPaymentInvalidCartItems)

		_, err := svc.HandleSuccess(ctx, url.Values{"tran_id": {"t"}})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestPaymentService_FailAndCancel(t *testing.T) {
	ctx := context.Background()
	gw := new(MockPaymentGateway)
	svc, orders, rec := newPaymentService(gw)

	form := url.Values{"tran_id": {"tran 7"}}
	assert.Equal(t, "https://shop.example.com/payment-fail?tran_id=tran+7", svc.HandleFail(ctx, form))
	assert.Equal(t, "https://shop.example.com/payment-cancel?tran_id=tran+7", svc.HandleCancel(ctx, form))
	assert.Equal(t, []string{OutcomeFailed, OutcomeCancelled}, rec.outcomes)

	stored, err := orders.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
	gw.AssertNotCalled(t, "ParseCallback", mock.Anything, mock.Anything)
}

func TestPaymentService_HandleIPN(t *testing.T) {
	ctx := context.Background()
	gw := new(MockPaymentGateway)
	svc, orders, _ := newPaymentService(gw)
	gw.On("ParseCallback", ctx, mock.Anything).Return(&finance.PaymentCallback{TransactionID: "tran-3", RawStatus: "VALID"}, nil)

	resp, err := svc.HandleIPN(ctx, url.Values{"tran_id": {"tran-3"}})
	require.NoError(t, err)
	assert.Equal(t, "tran-3", resp.TransactionID)
	assert.Equal(t, string(trade.StatusPaid), resp.Status)

	stored, err := orders.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}
