package payment

import (
	"errors"
	"time"
)

const (
	sslcommerzLiveURL    = "https://securepay.sslcommerz.com"
	sslcommerzSandboxURL = "https://sandbox.sslcommerz.com"
	sslcommerzSessionAPI = "/gwprocess/v4/api.php"
)

// SSLCommerzConfig contains configuration for the SSLCommerz hosted checkout
type SSLCommerzConfig struct {
	// StoreID is the merchant store id
	StoreID string
	// StorePassword is the merchant API password
	StorePassword string
	// IsSandbox selects the sandbox environment
	IsSandbox bool
	// Currency is used when a request does not name one
	Currency string
	// Timeout bounds each gateway call
	Timeout time.Duration
	// BaseURL overrides the environment host; used by tests
	BaseURL string
}

// Errors for configuration validation
var (
	ErrSSLCommerzMissingStoreID       = errors.New("sslcommerz: missing store id")
	ErrSSLCommerzMissingStorePassword = errors.New("sslcommerz: missing store password")
)

// Validate validates the configuration and fills defaults
func (c *SSLCommerzConfig) Validate() error {
	if c.StoreID == "" {
		return ErrSSLCommerzMissingStoreID
	}
	if c.StorePassword == "" {
		return ErrSSLCommerzMissingStorePassword
	}
	if c.Currency == "" {
		c.Currency = "BDT"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// SessionURL returns the session API endpoint for the configured environment
func (c *SSLCommerzConfig) SessionURL() string {
	base := c.BaseURL
	switch {
	case base != "":
	case c.IsSandbox:
		base = sslcommerzSandboxURL
	default:
		base = sslcommerzLiveURL
	}
	return base + sslcommerzSessionAPI
}
