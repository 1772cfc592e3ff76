package report

import (
	"sort"
)

// Rank returns the top n rows sorted descending by Values[metric].
//
// The sort is stable, so ties keep their input order. Fewer than n rows is
// not an error: all of them are returned. Rows without the metric column are
// skipped. The input slice is not modified, and ranking a ranked result again
// with the same n returns the same sequence.
func Rank(rows []Row, metric int, n int) ([]Row, error) {
	if n <= 0 {
		return nil, invalidArgumentf("n must be >= 1, got %d", n)
	}
	if metric < 0 {
		return nil, invalidArgumentf("metric index must be >= 0, got %d", metric)
	}

	ranked := make([]Row, 0, len(rows))
	for _, r := range rows {
		if metric < len(r.Values) {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Values[metric].GreaterThan(ranked[j].Values[metric])
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
