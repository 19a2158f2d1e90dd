package report

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// SalesReportResponse is the JSON shape of the sales report
type SalesReportResponse struct {
	AllTime   float64       `json:"allTime"`
	ThisMonth float64       `json:"thisMonth"`
	ThisWeek  float64       `json:"thisWeek"`
	Today     float64       `json:"today"`
	AllOrders []report.Sale `json:"allOrders"`
}

// SalesReportService aggregates delivered online orders and all POS orders
type SalesReportService struct {
	orderRepo    trade.OrderRepository
	posOrderRepo pos.OrderRepository
	now          func() time.Time
}

// NewSalesReportService creates a new SalesReportService
func NewSalesReportService(orderRepo trade.OrderRepository, posOrderRepo pos.OrderRepository) *SalesReportService {
	return &SalesReportService{
		orderRepo:    orderRepo,
		posOrderRepo: posOrderRepo,
		now:          time.Now,
	}
}

// WithClock overrides the time source used for the buckets
func (s *SalesReportService) WithClock(now func() time.Time) *SalesReportService {
	if now != nil {
		s.now = now
	}
	return s
}

// Report builds the sales summary. Online orders come first in allOrders.
func (s *SalesReportService) Report(ctx context.Context) (*SalesReportResponse, error) {
	online, err := s.orderRepo.FindDelivered(ctx)
	if err != nil {
		return nil, err
	}
	inStore, err := s.posOrderRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	sales := make([]report.Sale, 0, len(online)+len(inStore))
	for _, o := range online {
		sales = append(sales, report.Sale{
			ID:        o.ID.Hex(),
			Source:    report.SourceOnline,
			Status:    string(o.Status),
			Total:     o.Total.Decimal(),
			CreatedAt: o.CreatedAt,
			Order:     o,
		})
	}
	for _, o := range inStore {
		sales = append(sales, report.Sale{
			ID:        o.ID.Hex(),
			Source:    report.SourcePOS,
			Status:    o.Status,
			Total:     o.Total.Decimal(),
			CreatedAt: o.CreatedAt,
			Order:     o,
		})
	}

	summary := report.Summarize(s.now(), sales)
	return &SalesReportResponse{
		AllTime:   summary.AllTime.InexactFloat64(),
		ThisMonth: summary.ThisMonth.InexactFloat64(),
		ThisWeek:  summary.ThisWeek.InexactFloat64(),
		Today:     summary.Today.InexactFloat64(),
		AllOrders: summary.AllOrders,
	}, nil
}
