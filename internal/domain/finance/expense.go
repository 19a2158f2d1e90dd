package finance

import (
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseCategory groups shop expenses
type ExpenseCategory struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Status string             `bson:"status" json:"status"`
}

// NewExpenseCategory creates an expense category, active unless stated
func NewExpenseCategory(name, status string) (*ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Expense category name is required")
	}
	if status == "" {
		status = "active"
	}
	return &ExpenseCategory{Name: name, Status: status}, nil
}

// Expense is a single shop outgoing. Category is a loose reference.
type Expense struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category  string             `bson:"category" json:"category"`
	Amount    shared.Amount      `bson:"amount" json:"amount"`
	Date      time.Time          `bson:"date" json:"date"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewExpense creates an expense; a missing date falls back to now
func NewExpense(category string, amount shared.Amount, date *time.Time, note string, now time.Time) (*Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.InvalidInputError("Expense category is required")
	}
	if amount <= 0 {
		return nil, shared.InvalidInputError("Expense amount must be positive")
	}
	e := &Expense{Category: category, Amount: amount, Date: now, Note: note, CreatedAt: now}
	if date != nil {
		e.Date = *date
	}
	return e, nil
}

// ExpenseCategoryRepository persists expense categories
type ExpenseCategoryRepository interface {
	shared.Repository[ExpenseCategory]
}

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	shared.Repository[Expense]
}
