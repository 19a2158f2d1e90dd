package finance

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
)

// ExpenseService manages expense categories and expenses
type ExpenseService struct {
	categoryRepo finance.ExpenseCategoryRepository
	expenseRepo  finance.ExpenseRepository
	now          func() time.Time
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(categoryRepo finance.ExpenseCategoryRepository, expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		now:          time.Now,
	}
}

// CreateCategory creates an expense category
func (s *ExpenseService) CreateCategory(ctx context.Context, req ExpenseCategoryRequest) (shared.InsertResult, error) {
	category, err := finance.NewExpenseCategory(req.Name, req.Status)
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.categoryRepo.Create(ctx, category)
}

// ListCategories returns every expense category
func (s *ExpenseService) ListCategories(ctx context.Context) ([]finance.ExpenseCategory, error) {
	return s.categoryRepo.FindAll(ctx, shared.Filter{})
}

// UpdateCategory replaces an expense category's fields
func (s *ExpenseService) UpdateCategory(ctx context.Context, id string, req ExpenseCategoryRequest) (shared.UpdateResult, error) {
	category, err := finance.NewExpenseCategory(req.Name, req.Status)
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[finance.ExpenseCategory](ctx, s.categoryRepo, id, shared.Changes{
		"name":   category.Name,
		"status": category.Status,
	})
}

// DeleteCategory removes an expense category. Expenses keep their reference.
func (s *ExpenseService) DeleteCategory(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[finance.ExpenseCategory](ctx, s.categoryRepo, id)
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, req ExpenseRequest) (shared.InsertResult, error) {
	expense, err := s.toExpense(req)
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.expenseRepo.Create(ctx, expense)
}

// List returns expenses by date, newest first, optionally for one category
func (s *ExpenseService) List(ctx context.Context, filter ExpenseFilter) ([]finance.Expense, error) {
	return s.expenseRepo.FindAll(ctx, shared.Filter{}.Set("category", filter.Category))
}

// GetByID returns one expense
func (s *ExpenseService) GetByID(ctx context.Context, id string) (*finance.Expense, error) {
	return shared.Get[finance.Expense](ctx, s.expenseRepo, id, "Expense")
}

// Update replaces an expense's fields; createdAt is kept
func (s *ExpenseService) Update(ctx context.Context, id string, req ExpenseRequest) (shared.UpdateResult, error) {
	expense, err := s.toExpense(req)
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[finance.Expense](ctx, s.expenseRepo, id, shared.Changes{
		"category": expense.Category,
		"amount":   expense.Amount,
		"date":     expense.Date,
		"note":     expense.Note,
	})
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[finance.Expense](ctx, s.expenseRepo, id)
}

func (s *ExpenseService) toExpense(req ExpenseRequest) (*finance.Expense, error) {
	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return finance.NewExpense(req.Category, req.Amount, date, req.Note, s.now())
}
