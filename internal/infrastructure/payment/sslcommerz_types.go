package payment

import "strings"

// sslcommerzSessionSuccess is the session API status of an opened session
const sslcommerzSessionSuccess = "SUCCESS"

// Passthrough fields echoed back on every callback
const (
	fieldCartItems = "value_a"
	fieldEmail     = "value_b"
	fieldTotal     = "value_c"
)

// sslcommerzSessionResponse is the JSON body of the session API
type sslcommerzSessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// IsSuccess reports whether the session was opened
func (r *sslcommerzSessionResponse) IsSuccess() bool {
	return strings.EqualFold(r.Status, sslcommerzSessionSuccess) && r.GatewayPageURL != ""
}

// orDefault returns v, or fallback when v is blank.
// The session API rejects empty customer and product fields.
func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
