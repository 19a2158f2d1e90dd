// Package payment contains hosted payment gateway adapters.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/trade"
)

var _ finance.PaymentGateway = (*SSLCommerzAdapter)(nil)

// maxProductNameBytes is the gateway's limit on product_name
const maxProductNameBytes = 250

// SSLCommerzAdapter implements finance.PaymentGateway for SSLCommerz
type SSLCommerzAdapter struct {
	config     *SSLCommerzConfig
	httpClient *http.Client
}

// NewSSLCommerzAdapter creates a new SSLCommerz adapter
func NewSSLCommerzAdapter(config *SSLCommerzConfig) (*SSLCommerzAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &SSLCommerzAdapter{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// CreatePayment opens a checkout session. The cart, email and total ride
// along in value_a/b/c and come back on the callbacks.
func (a *SSLCommerzAdapter) CreatePayment(ctx context.Context, req *finance.CreatePaymentRequest) (*finance.CreatePaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := json.Marshal(req.CartItems)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz: failed to marshal cart items: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = a.config.Currency
	}
	total := req.Amount.StringFixed(2)

	form := url.Values{}
	form.Set("store_id", a.config.StoreID)
	form.Set("store_passwd", a.config.StorePassword)
	form.Set("total_amount", total)
	form.Set("currency", currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.Callbacks.SuccessURL)
	form.Set("fail_url", req.Callbacks.FailURL)
	form.Set("cancel_url", req.Callbacks.CancelURL)
	if req.Callbacks.IPNURL != "" {
		form.Set("ipn_url", req.Callbacks.IPNURL)
	}
	form.Set("cus_name", orDefault(req.CustomerName, "Customer"))
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_add1", orDefault(req.Address, "N/A"))
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")
	form.Set("cus_phone", orDefault(req.CustomerPhone, "N/A"))
	form.Set("shipping_method", "NO")
	form.Set("num_of_item", strconv.Itoa(len(req.CartItems)))
	form.Set("product_name", productName(req.CartItems))
	form.Set("product_category", "General")
	form.Set("product_profile", "general")
	form.Set(fieldCartItems, string(cart))
	form.Set(fieldEmail, req.CustomerEmail)
	form.Set(fieldTotal, total)

	body, err := a.doRequest(ctx, form)
	if err != nil {
		return nil, err
	}

	var session sslcommerzSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", finance.ErrGatewayInvalidResponse, err)
	}
	if !session.IsSuccess() {
		return nil, fmt.Errorf("%w: %s %s", finance.ErrGatewaySessionRejected, session.Status, session.FailedReason)
	}

	return &finance.CreatePaymentResponse{
		TransactionID: req.TransactionID,
		GatewayURL:    session.GatewayPageURL,
		SessionKey:    session.SessionKey,
	}, nil
}

// ParseCallback reads a success/fail/cancel/IPN post-back.
// The total prefers value_c, the amount we submitted, over the gateway's amount.
func (a *SSLCommerzAdapter) ParseCallback(_ context.Context, form map[string][]string) (*finance.PaymentCallback, error) {
	values := url.Values(form)

	tranID := strings.TrimSpace(values.Get("tran_id"))
	if tranID == "" {
		return nil, finance.ErrPaymentInvalidTransactionID
	}

	lines := []trade.LineItem{}
	if raw := strings.TrimSpace(values.Get(fieldCartItems)); raw != "" {
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			return nil, fmt.Errorf("%w: %v", finance.ErrPaymentInvalidCartItems, err)
		}
		if lines == nil {
			lines = []trade.LineItem{}
		}
	}

	amount := values.Get(fieldTotal)
	if strings.TrimSpace(amount) == "" {
		amount = values.Get("amount")
	}

	return &finance.PaymentCallback{
		TransactionID: tranID,
		ValidationID:  values.Get("val_id"),
		RawStatus:     values.Get("status"),
		Amount:        parseAmount(amount),
		Currency:      values.Get("currency"),
		CardType:      values.Get("card_type"),
		Email:         values.Get(fieldEmail),
		CartItems:     lines,
	}, nil
}

func (a *SSLCommerzAdapter) doRequest(ctx context.Context, form url.Values) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.SessionURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("sslcommerz: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", finance.ErrGatewayRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", finance.ErrGatewayRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", finance.ErrGatewayRequestFailed, resp.StatusCode)
	}
	return body, nil
}

// parseAmount treats a missing or non-numeric amount as zero
func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func productName(lines []trade.LineItem) string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	if len(names) == 0 {
		return "Cart items"
	}
	return truncateUTF8(strings.Join(names, ", "), maxProductNameBytes)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
