package persistence

import (
	"github.com/storefront/backend/internal/domain/finance"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExpenseCategoryRepository implements finance.ExpenseCategoryRepository
type ExpenseCategoryRepository struct {
	collection[finance.ExpenseCategory]
}

// NewExpenseCategoryRepository creates a new expense category repository
func NewExpenseCategoryRepository(db *mongo.Database) *ExpenseCategoryRepository {
	return &ExpenseCategoryRepository{newCollection[finance.ExpenseCategory](db, CollExpenseCategories, "Expense category")}
}

// ExpenseRepository implements finance.ExpenseRepository
type ExpenseRepository struct {
	collection[finance.Expense]
}

// NewExpenseRepository creates a new expense repository. Listings are by date, newest first.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{newCollection[finance.Expense](db, CollExpenses, "Expense").sorted(bson.D{{Key: "date", Value: -1}})}
}
