package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sale(source Source, total int64, at time.Time) Sale {
	return Sale{Source: source, Total: decimal.NewFromInt(total), CreatedAt: at}
}

func TestSummarize_Buckets(t *testing.T) {
	now := time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

	sales := []Sale{
		sale(SourceOnline, 100, now.Add(-2*time.Hour)),                    // today, week, month
		sale(SourcePOS, 30, now.Add(-time.Hour)),                          // today, week, month
		sale(SourceOnline, 200, now.Add(-3*24*time.Hour)),                 // week, month
		sale(SourcePOS, 400, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)), // month
		sale(SourceOnline, 800, time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC)),
		sale(SourceOnline, 1600, time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)), // same month last year
	}

	s := Summarize(now, sales)

	assert.True(t, decimal.NewFromInt(3130).Equal(s.AllTime), s.AllTime.String())
	assert.True(t, decimal.NewFromInt(730).Equal(s.ThisMonth), s.ThisMonth.String())
	assert.True(t, decimal.NewFromInt(330).Equal(s.ThisWeek), s.ThisWeek.String())
	assert.True(t, decimal.NewFromInt(130).Equal(s.Today), s.Today.String())
	assert.Len(t, s.AllOrders, 6)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(time.Now(), nil)
	assert.True(t, s.AllTime.IsZero())
	assert.NotNil(t, s.AllOrders)
	assert.Empty(t, s.AllOrders)
}

func TestInLastWeek(t *testing.T) {
	now := time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"exactly seven days ago is included", now.Add(-WeekWindow), true},
		{"one second older is excluded", now.Add(-WeekWindow - time.Second), false},
		{"future timestamps are included", now.Add(time.Hour), true},
		{"zero time is excluded", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InLastWeek(now, tt.at))
		})
	}
}

func TestIsToday_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	now := time.Date(2025, 3, 20, 2, 0, 0, 0, loc) // 2025-03-19 20:00 UTC

	assert.True(t, IsToday(now, time.Date(2025, 3, 19, 19, 0, 0, 0, time.UTC)))
	assert.False(t, IsToday(now, time.Date(2025, 3, 19, 17, 0, 0, 0, time.UTC)))
}

func TestIsThisMonth(t *testing.T) {
	now := time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsThisMonth(now, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsThisMonth(now, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsThisMonth(now, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
}

func TestSale_MarshalJSON(t *testing.T) {
	s := Sale{
		ID:     "6650a1b2c3d4e5f601234567",
		Source: SourcePOS,
		Status: "paid",
		Total:  decimal.RequireFromString("30.5"),
		Order:  map[string]any{"total": 30.5},
	}

	raw, err := json.Marshal(s)
	assert.NoError(t, err)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 30.5, got["total"])
	assert.Equal(t, "pos", got["source"])
	assert.Equal(t, "6650a1b2c3d4e5f601234567", got["_id"])
	assert.Equal(t, map[string]any{"total": 30.5}, got["order"])
}
