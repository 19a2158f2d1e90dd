package report

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReportService_Report(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)
	orders := memory.NewOrderRepository()
	posOrders := memory.NewPOSOrderRepository()

	line := []trade.LineItem{{ProductID: "6650a1b2c3d4e5f601234567", Quantity: 1}}
	for _, o := range []trade.Order{
		{Email: "a@example.com", CartItems: line, Status: trade.StatusDelivered, Total: 100, CreatedAt: now.Add(-time.Hour)},
		{Email: "b@example.com", CartItems: line, Status: trade.StatusPending, Total: 50, CreatedAt: now.Add(-time.Hour)},
		{Email: "c@example.com", CartItems: line, Status: trade.StatusDelivered, Total: 40, CreatedAt: now.AddDate(0, 0, -10)},
	} {
		o := o
		_, err := orders.Create(ctx, &o)
		require.NoError(t, err)
	}
	_, err := posOrders.Create(ctx, &pos.Order{CartItems: line, Total: 30, Status: pos.StatusPaid, CreatedAt: now.Add(-2 * time.Hour)})
	require.NoError(t, err)

	svc := NewSalesReportService(orders, posOrders).WithClock(func() time.Time { return now })
	got, err := svc.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, 170.0, got.AllTime)
	assert.Equal(t, 170.0, got.ThisMonth)
	assert.Equal(t, 130.0, got.ThisWeek)
	assert.Equal(t, 130.0, got.Today)

	require.Len(t, got.AllOrders, 3, "pending orders are not sales")
	assert.Equal(t, report.SourceOnline, got.AllOrders[0].Source)
	assert.Equal(t, report.SourceOnline, got.AllOrders[1].Source)
	assert.Equal(t, report.SourcePOS, got.AllOrders[2].Source)
}

func TestSalesReportService_Report_Empty(t *testing.T) {
	svc := NewSalesReportService(memory.NewOrderRepository(), memory.NewPOSOrderRepository())

	got, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.AllTime)
	assert.Zero(t, got.Today)
	assert.NotNil(t, got.AllOrders)
	assert.Empty(t, got.AllOrders)
}
