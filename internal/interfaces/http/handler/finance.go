package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/storefront/backend/internal/application/finance"
	reportapp "github.com/storefront/backend/internal/application/report"
)

// ExpenseHandler handles expense categories and expenses
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req financeapp.ExpenseCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.expenseService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

func (h *ExpenseHandler) UpdateCategory(c *gin.Context) {
	var req financeapp.ExpenseCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.expenseService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	result, err := h.expenseService.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req financeapp.ExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /expenses?category=
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter financeapp.ExpenseFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	expenses, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expenses)
}

func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expense, err := h.expenseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req financeapp.ExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.expenseService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	result, err := h.expenseService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ReportHandler serves the sales report
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.SalesReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.SalesReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesReport handles GET /sales-report
func (h *ReportHandler) SalesReport(c *gin.Context) {
	report, err := h.reportService.Report(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
