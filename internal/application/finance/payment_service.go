package finance

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// Gateway callback paths served by this API
const (
	PathSuccess = "/sslcommerz/success"
	PathFail    = "/sslcommerz/fail"
	PathCancel  = "/sslcommerz/cancel"
	PathIPN     = "/sslcommerz/ipn"
)

// Frontend landing pages
const (
	pageSuccess = "/payment-success"
	pageFail    = "/payment-fail"
	pageCancel  = "/payment-cancel"
)

// Payment outcomes reported to the recorder
const (
	OutcomeInitiated = "initiated"
	OutcomePaid      = "paid"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// PaymentRecorder observes payment flow outcomes
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, outcome string)
}

type nopPaymentRecorder struct{}

func (nopPaymentRecorder) RecordPayment(context.Context, string) {}

// PaymentServiceConfig holds the URLs and currency used for checkout sessions
type PaymentServiceConfig struct {
	Currency string
	// ServerURL is the public base URL the gateway posts back to
	ServerURL string
	// FrontendURL is the storefront the customer is redirected to afterwards
	FrontendURL string
}

// PaymentService runs the hosted checkout flow.
// A successful callback creates a new order; there is no pre-payment draft.
type PaymentService struct {
	gateway   finance.PaymentGateway
	orderRepo trade.OrderRepository
	cfg       PaymentServiceConfig
	recorder  PaymentRecorder
	logger    *zap.Logger
	now       func() time.Time
	newTranID func() string
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(gateway finance.PaymentGateway, orderRepo trade.OrderRepository, cfg PaymentServiceConfig, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	return &PaymentService{
		gateway:   gateway,
		orderRepo: orderRepo,
		cfg:       cfg,
		recorder:  nopPaymentRecorder{},
		logger:    logger,
		now:       time.Now,
		newTranID: uuid.NewString,
	}
}

// WithRecorder sets the payment recorder
func (s *PaymentService) WithRecorder(r PaymentRecorder) *PaymentService {
	if r != nil {
		s.recorder = r
	}
	return s
}

// Init opens a gateway session carrying the cart, email and total so the
// success callback can build the order.
func (s *PaymentService) Init(ctx context.Context, req InitPaymentRequest) (*InitPaymentResponse, error) {
	if err := trade.ValidateLines(req.CartItems); err != nil {
		return nil, err
	}
	if req.Total <= 0 {
		return nil, shared.InvalidInputError("Total must be positive")
	}

	tranID := s.newTranID()
	resp, err := s.gateway.CreatePayment(ctx, &finance.CreatePaymentRequest{
		TransactionID: tranID,
		Amount:        req.Total.Decimal(),
		Currency:      s.cfg.Currency,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Address:       req.Address,
		CartItems:     req.CartItems,
		Callbacks: finance.CallbackURLs{
			SuccessURL: s.cfg.ServerURL + PathSuccess,
			FailURL:    s.cfg.ServerURL + PathFail,
			CancelURL:  s.cfg.ServerURL + PathCancel,
			IPNURL:     s.cfg.ServerURL + PathIPN,
		},
	})
	if err != nil {
		s.logger.Error("Payment session creation failed",
			zap.String("tran_id", tranID),
			zap.Error(err))
		return nil, fmt.Errorf("init payment %s: %w", tranID, err)
	}
	s.recorder.RecordPayment(ctx, OutcomeInitiated)

	return &InitPaymentResponse{URL: resp.GatewayURL, TransactionID: tranID}, nil
}

// HandleSuccess records the order described by the callback and returns
// the frontend page to redirect to.
func (s *PaymentService) HandleSuccess(ctx context.Context, form url.Values) (string, error) {
	cb, err := s.parse(ctx, form)
	if err != nil {
		return "", err
	}

	order := &trade.Order{
		Email:         cb.Email,
		CartItems:     cb.CartItems,
		Status:        cb.Status(),
		Total:         shared.NewAmount(cb.Amount),
		TransactionID: cb.TransactionID,
		OrderType:     trade.OrderTypeOnline,
		CreatedAt:     s.now(),
	}
	if order.CartItems == nil {
		order.CartItems = []trade.LineItem{}
	}
	if _, err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("record paid order %s: %w", cb.TransactionID, err)
	}

	s.logger.Info("Payment callback recorded",
		zap.String("tran_id", cb.TransactionID),
		zap.String("gateway_status", cb.RawStatus),
		zap.String("status", string(order.Status)))

	if order.Status == trade.StatusPaid {
		s.recorder.RecordPayment(ctx, OutcomePaid)
		return s.page(pageSuccess, cb.TransactionID), nil
	}
	s.recorder.RecordPayment(ctx, OutcomeFailed)
	return s.page(pageFail, cb.TransactionID), nil
}

// HandleFail returns the failure page; nothing is stored
func (s *PaymentService) HandleFail(ctx context.Context, form url.Values) string {
	s.recorder.RecordPayment(ctx, OutcomeFailed)
	return s.page(pageFail, form.Get("tran_id"))
}

// HandleCancel returns the cancellation page; nothing is stored
func (s *PaymentService) HandleCancel(ctx context.Context, form url.Values) string {
	s.recorder.RecordPayment(ctx, OutcomeCancelled)
	return s.page(pageCancel, form.Get("tran_id"))
}

// HandleIPN acknowledges a notification with its normalized status
func (s *PaymentService) HandleIPN(ctx context.Context, form url.Values) (*IPNResponse, error) {
	cb, err := s.parse(ctx, form)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Payment IPN received",
		zap.String("tran_id", cb.TransactionID),
		zap.String("gateway_status", cb.RawStatus))
	return &IPNResponse{TransactionID: cb.TransactionID, Status: string(cb.Status())}, nil
}

// parse turns malformed callbacks into validation errors
func (s *PaymentService) parse(ctx context.Context, form url.Values) (*finance.PaymentCallback, error) {
	cb, err := s.gateway.ParseCallback(ctx, form)
	switch {
	case err == nil:
		return cb, nil
	case errors.Is(err, finance.ErrPaymentInvalidTransactionID):
		return nil, shared.InvalidInputError("Transaction ID missing")
	case errors.Is(err, finance.ErrPaymentInvalidCartItems):
		return nil, shared.InvalidInputError("Invalid cart items in payment callback")
	default:
		return nil, fmt.Errorf("parse payment callback: %w", err)
	}
}

func (s *PaymentService) page(path, tranID string) string {
	return s.cfg.FrontendURL + path + "?" + url.Values{"tran_id": {tranID}}.Encode()
}
