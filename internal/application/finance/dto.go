package finance

import (
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// ExpenseCategoryRequest creates or replaces an expense category
type ExpenseCategoryRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ExpenseRequest creates or replaces an expense.
// Date accepts RFC 3339, "2006-01-02T15:04" or "2006-01-02"; empty means now.
type ExpenseRequest struct {
	Category string        `json:"category" binding:"required,max=100"`
	Amount   shared.Amount `json:"amount"`
	Date     string        `json:"date"`
	Note     string        `json:"note" binding:"max=1000"`
}

// ExpenseFilter carries the expense list query parameters
type ExpenseFilter struct {
	Category string `form:"category"`
}

// InitPaymentRequest opens a hosted checkout for the customer's cart
type InitPaymentRequest struct {
	Total     shared.Amount    `json:"total"`
	Email     string           `json:"email" binding:"required,email"`
	Name      string           `json:"name" binding:"max=200"`
	Phone     string           `json:"phone" binding:"max=50"`
	Address   string           `json:"address" binding:"max=500"`
	CartItems []trade.LineItem `json:"cartItems" binding:"required,min=1"`
}

// InitPaymentResponse carries the gateway page to redirect the customer to
type InitPaymentResponse struct {
	URL           string `json:"url"`
	TransactionID string `json:"transactionId"`
}

// IPNResponse acknowledges an instant payment notification
type IPNResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}
