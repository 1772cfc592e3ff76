package postgres

import (
	"database/sql"
	"fmt"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	"github.com/lib/pq"
)

// predicateArgs renders a compiled predicate as the five bound parameters of
// filterClause. Slices are never nil: a NULL array would make cardinality()
// NULL and reject every row.
func predicateArgs(p report.Predicate) []interface{} {
	mins, maxs := p.AgeBounds()
	return []interface{}{
		pq.Array(nonNil(p.Include)),
		pq.Array(nonNil(p.Exclude)),
		pq.Array(nonNil(p.Genres)),
		pq.Array(mins),
		pq.Array(maxs),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanAggregateRow scans a label column followed by metrics raw cells.
// A NULL label comes back as ok=false.
func scanAggregateRow(row scanner, metrics int) (raw report.RawRow, ok bool, err error) {
	var label sql.NullString
	cells := make([]interface{}, metrics)
	dest := make([]interface{}, 0, metrics+1)
	dest = append(dest, &label)
	for i := range cells {
		dest = append(dest, &cells[i])
	}

	if err := row.Scan(dest...); err != nil {
		return report.RawRow{}, false, fmt.Errorf("failed to scan aggregate row: %w", err)
	}
	if !label.Valid {
		return report.RawRow{}, false, nil
	}
	return report.RawRow{Label: label.String, Cells: cells}, true, nil
}
