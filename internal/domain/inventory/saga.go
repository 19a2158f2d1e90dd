package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockLedger applies stock deltas to products.
// A negative delta decrements; no floor is enforced.
type StockLedger interface {
	AdjustStock(ctx context.Context, productID primitive.ObjectID, delta int) (shared.UpdateResult, error)
}

// StepStatus is the outcome of one saga step
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
	// StepNoMatch means the step ran but its target record did not exist
	StepNoMatch StepStatus = "no_match"
)

// Step names
const (
	StepFetchOrder     = "fetch_order"
	StepUpdateStatus   = "update_status"
	StepDecrementStock = "decrement_stock"
	StepInsertOrder    = "insert_order"
	StepClearPOSCart   = "clear_pos_cart"
)

// Step is one independently committed sub-operation
type Step struct {
	Name   string     `json:"name"`
	Target string     `json:"target,omitempty"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Report lists every step of a multi-step operation in execution order.
// Steps already committed stay committed when a later one fails.
type Report struct {
	Operation string `json:"operation"`
	Steps     []Step `json:"steps"`
}

// NewReport starts an empty report
func NewReport(operation string) *Report {
	return &Report{Operation: operation, Steps: []Step{}}
}

// Record appends a step outcome
func (r *Report) Record(name, target string, status StepStatus, err error) {
	step := Step{Name: name, Target: target, Status: status}
	if err != nil {
		step.Error = err.Error()
	}
	r.Steps = append(r.Steps, step)
}

// Skip records one skipped step per target. Steps were never attempted
// because an earlier one failed.
func (r *Report) Skip(name string, targets ...string) {
	for _, t := range targets {
		r.Record(name, t, StepSkipped, nil)
	}
}

// Failed returns the first failed step, if any
func (r *Report) Failed() (Step, bool) {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return s, true
		}
	}
	return Step{}, false
}

// Succeeded lists the names of steps that committed
func (r *Report) Succeeded() []string {
	var names []string
	for _, s := range r.Steps {
		if s.Status == StepSucceeded || s.Status == StepNoMatch {
			names = append(names, describe(s))
		}
	}
	return names
}

func describe(s Step) string {
	if s.Target == "" {
		return s.Name
	}
	return s.Name + ":" + s.Target
}

// PartialFailureCode identifies SagaError in the error taxonomy
const PartialFailureCode = "PARTIAL_FAILURE"

// SagaError reports a multi-step operation that stopped partway.
// It carries the report so callers can see which steps committed.
type SagaError struct {
	Report *Report
	Cause  error
}

// Error implements the error interface
func (e *SagaError) Error() string {
	step, _ := e.Report.Failed()
	done := e.Report.Succeeded()
	if len(done) == 0 {
		return fmt.Sprintf("%s failed at %s: %v", e.Report.Operation, describe(step), e.Cause)
	}
	return fmt.Sprintf("%s failed at %s after %s: %v",
		e.Report.Operation, describe(step), strings.Join(done, ", "), e.Cause)
}

// Unwrap returns the cause
func (e *SagaError) Unwrap() error {
	return e.Cause
}

// Details returns the report for error envelopes
func (e *SagaError) Details() any {
	return e.Report
}
