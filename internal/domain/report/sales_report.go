package report

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which order collection a sale came from
type Source string

const (
	SourceOnline Source = "online"
	SourcePOS    Source = "pos"
)

// Sale is the read model of one counted order
type Sale struct {
	ID        string          `json:"_id"`
	Source    Source          `json:"source"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	// Order is the stored record for client-side drill-down
	Order any `json:"order"`
}

// MarshalJSON writes the total as a JSON number, matching the stored order
func (s Sale) MarshalJSON() ([]byte, error) {
	type plain Sale
	return json.Marshal(struct {
		plain
		Total float64 `json:"total"`
	}{plain(s), s.Total.InexactFloat64()})
}

// Summary holds sales totals per time window
type Summary struct {
	AllTime   decimal.Decimal
	ThisMonth decimal.Decimal
	ThisWeek  decimal.Decimal
	Today     decimal.Decimal
	AllOrders []Sale
}

// WeekWindow is how far back the weekly bucket reaches
const WeekWindow = 7 * 24 * time.Hour

// IsToday reports whether createdAt falls on now's calendar date in now's location
func IsToday(now, createdAt time.Time) bool {
	if createdAt.IsZero() {
		return false
	}
	c := createdAt.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := c.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// InLastWeek reports whether createdAt is at or after now minus seven days.
// There is no upper bound and no calendar-week alignment.
func InLastWeek(now, createdAt time.Time) bool {
	if createdAt.IsZero() {
		return false
	}
	return !createdAt.Before(now.Add(-WeekWindow))
}

// IsThisMonth reports whether createdAt shares now's calendar month and year
func IsThisMonth(now, createdAt time.Time) bool {
	if createdAt.IsZero() {
		return false
	}
	c := createdAt.In(now.Location())
	return now.Year() == c.Year() && now.Month() == c.Month()
}

// Summarize buckets sales relative to now. It is a pure function.
func Summarize(now time.Time, sales []Sale) Summary {
	s := Summary{
		AllTime:   decimal.Zero,
		ThisMonth: decimal.Zero,
		ThisWeek:  decimal.Zero,
		Today:     decimal.Zero,
		AllOrders: sales,
	}
	if s.AllOrders == nil {
		s.AllOrders = []Sale{}
	}

	for _, sale := range sales {
		s.AllTime = s.AllTime.Add(sale.Total)
		if IsThisMonth(now, sale.CreatedAt) {
			s.ThisMonth = s.ThisMonth.Add(sale.Total)
		}
		if InLastWeek(now, sale.CreatedAt) {
			s.ThisWeek = s.ThisWeek.Add(sale.Total)
		}
		if IsToday(now, sale.CreatedAt) {
			s.Today = s.Today.Add(sale.Total)
		}
	}
	return s
}
