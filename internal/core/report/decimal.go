package report

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow is a grouped row as scanned from a store, before numeric coercion.
// Cells are whatever the driver returned for the metric columns.
type RawRow struct {
	Label string
	Cells []interface{}
}

// Coerce converts a driver cell to a decimal. ok is false for NULL and for
// anything that does not parse as a number.
func Coerce(v interface{}) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return val, true
	case int64:
		return decimal.NewFromInt(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(val), true
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(val), true
	case []byte:
		return parseDecimal(string(val))
	case string:
		return parseDecimal(val)
	}
	return decimal.Zero, false
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceRows converts raw rows to Rows. A row is dropped silently when it has
// fewer than metrics cells or any required cell fails to coerce.
func CoerceRows(raw []RawRow, metrics int) []Row {
	rows := make([]Row, 0, len(raw))
next:
	for _, r := range raw {
		if len(r.Cells) < metrics {
			continue
		}
		values := make([]decimal.Decimal, metrics)
		for i := 0; i < metrics; i++ {
			d, ok := Coerce(r.Cells[i])
			if !ok {
				continue next
			}
			values[i] = d
		}
		rows = append(rows, Row{Label: r.Label, Values: values})
	}
	return rows
}
