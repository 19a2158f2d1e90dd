package shared

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a monetary or numeric document value that tolerates loosely
// typed input. Any BSON numeric type or numeric string decodes to its value;
// missing, null or non-numeric input decodes to zero.
type Amount float64

// NewAmount creates an Amount from a decimal
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.InexactFloat64())
}

// Decimal returns the amount as a decimal for arithmetic
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a))
}

// Float64 returns the raw value
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*a = 0
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		if v, ok := rv.DoubleOK(); ok {
			*a = Amount(v)
		}
	case bson.TypeInt32:
		if v, ok := rv.Int32OK(); ok {
			*a = Amount(v)
		}
	case bson.TypeInt64:
		if v, ok := rv.Int64OK(); ok {
			*a = Amount(v)
		}
	case bson.TypeDecimal128:
		if v, ok := rv.Decimal128OK(); ok {
			*a = parseAmount(v.String())
		}
	case bson.TypeString:
		if v, ok := rv.StringValueOK(); ok {
			*a = parseAmount(v)
		}
	}
	return nil
}

// UnmarshalJSON accepts numbers and numeric strings; anything else is zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = parseAmount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
	}
	return nil
}

func parseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return NewAmount(d)
}
