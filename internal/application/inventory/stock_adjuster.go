package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront/backend/internal/domain/inventory"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// Operation names used in saga reports
const (
	OpOrderTransition = "order_status_transition"
	OpPOSPlacement    = "pos_order_placement"
)

// Recorder observes committed stock movements
type Recorder interface {
	RecordStockDecrement(ctx context.Context, source string, quantity int)
	RecordSagaFailure(ctx context.Context, operation, step string)
}

type nopRecorder struct{}

func (nopRecorder) RecordStockDecrement(context.Context, string, int) {}
func (nopRecorder) RecordSagaFailure(context.Context, string, string) {}

// StockAdjuster composes the multi-step operations that move product stock.
// Each step commits on its own; a failure stops the sequence without
// undoing earlier steps and is reported as an inventory.SagaError.
type StockAdjuster struct {
	orderRepo    trade.OrderRepository
	posOrderRepo pos.OrderRepository
	posCartRepo  pos.CartRepository
	ledger       inventory.StockLedger
	recorder     Recorder
}

// NewStockAdjuster creates a new StockAdjuster
func NewStockAdjuster(
	orderRepo trade.OrderRepository,
	posOrderRepo pos.OrderRepository,
	posCartRepo pos.CartRepository,
	ledger inventory.StockLedger,
) *StockAdjuster {
	return &StockAdjuster{
		orderRepo:    orderRepo,
		posOrderRepo: posOrderRepo,
		posCartRepo:  posCartRepo,
		ledger:       ledger,
		recorder:     nopRecorder{},
	}
}

// WithRecorder sets the stock movement recorder
func (s *StockAdjuster) WithRecorder(r Recorder) *StockAdjuster {
	if r != nil {
		s.recorder = r
	}
	return s
}

// TransitionOrder fetches the order, sets its status unconditionally and,
// only when the new status is delivered, decrements stock for every line.
// Repeating a delivered transition decrements again.
func (s *StockAdjuster) TransitionOrder(ctx context.Context, orderID string, status trade.OrderStatus) (*inventory.Report, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, shared.InvalidInputError("Status is required")
	}
	id, err := shared.ParseID(orderID)
	if err != nil {
		return nil, err
	}

	report := inventory.NewReport(OpOrderTransition)
	target := id.Hex()

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFoundError("Order")
		}
		report.Record(inventory.StepFetchOrder, target, inventory.StepFailed, err)
		report.Skip(inventory.StepUpdateStatus, target)
		return s.fail(ctx, report, inventory.StepFetchOrder, err)
	}
	report.Record(inventory.StepFetchOrder, target, inventory.StepSucceeded, nil)

	if _, err := s.orderRepo.Update(ctx, id, shared.Changes{"status": status}); err != nil {
		report.Record(inventory.StepUpdateStatus, target, inventory.StepFailed, err)
		if status.IsFulfillment() {
			report.Skip(inventory.StepDecrementStock, lineTargets(order.CartItems)...)
		}
		return s.fail(ctx, report, inventory.StepUpdateStatus, err)
	}
	report.Record(inventory.StepUpdateStatus, target, inventory.StepSucceeded, nil)

	if !status.IsFulfillment() {
		return report, nil
	}
	if err := s.decrementLines(ctx, report, trade.OrderTypeOnline, order.CartItems); err != nil {
		return s.fail(ctx, report, inventory.StepDecrementStock, err)
	}
	return report, nil
}

// PlacePOSOrder inserts the POS order, decrements stock for every line and
// then clears the whole POS cart, including lines not part of this sale.
func (s *StockAdjuster) PlacePOSOrder(ctx context.Context, order *pos.Order) (*inventory.Report, error) {
	report := inventory.NewReport(OpPOSPlacement)

	result, err := s.posOrderRepo.Create(ctx, order)
	if err != nil {
		report.Record(inventory.StepInsertOrder, "", inventory.StepFailed, err)
		report.Skip(inventory.StepDecrementStock, lineTargets(order.CartItems)...)
		report.Record(inventory.StepClearPOSCart, "", inventory.StepSkipped, nil)
		return s.fail(ctx, report, inventory.StepInsertOrder, err)
	}
	report.Record(inventory.StepInsertOrder, result.InsertedID, inventory.StepSucceeded, nil)

	if err := s.decrementLines(ctx, report, trade.OrderTypePOS, order.CartItems); err != nil {
		report.Record(inventory.StepClearPOSCart, "", inventory.StepSkipped, nil)
		return s.fail(ctx, report, inventory.StepDecrementStock, err)
	}

	if _, err := s.posCartRepo.Clear(ctx); err != nil {
		report.Record(inventory.StepClearPOSCart, "", inventory.StepFailed, err)
		return s.fail(ctx, report, inventory.StepClearPOSCart, err)
	}
	report.Record(inventory.StepClearPOSCart, "", inventory.StepSucceeded, nil)

	return report, nil
}

// decrementLines applies one $inc per line in order and stops at the first
// failure, marking the remaining lines skipped. A product that no longer
// exists is recorded as no_match and does not stop the sequence.
func (s *StockAdjuster) decrementLines(ctx context.Context, report *inventory.Report, source string, lines []trade.LineItem) error {
	for i, line := range lines {
		productID, err := shared.ParseID(line.ProductID)
		if err == nil {
			var result shared.UpdateResult
			result, err = s.ledger.AdjustStock(ctx, productID, -line.Quantity)
			if err == nil {
				if result.MatchedCount == 0 {
					report.Record(inventory.StepDecrementStock, line.ProductID, inventory.StepNoMatch, nil)
					continue
				}
				report.Record(inventory.StepDecrementStock, line.ProductID, inventory.StepSucceeded, nil)
				s.recorder.RecordStockDecrement(ctx, source, line.Quantity)
				continue
			}
		}
		report.Record(inventory.StepDecrementStock, line.ProductID, inventory.StepFailed, err)
		report.Skip(inventory.StepDecrementStock, lineTargets(lines[i+1:])...)
		return err
	}
	return nil
}

func (s *StockAdjuster) fail(ctx context.Context, report *inventory.Report, step string, cause error) (*inventory.Report, error) {
	s.recorder.RecordSagaFailure(ctx, report.Operation, step)
	return report, &inventory.SagaError{Report: report, Cause: cause}
}

func lineTargets(lines []trade.LineItem) []string {
	targets := make([]string, 0, len(lines))
	for _, l := range lines {
		targets = append(targets, l.ProductID)
	}
	return targets
}
