package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GameRecord is one row of dim_game. Categories and Genres are already split
// into tags; use SplitTags to parse the comma-joined columns.
type GameRecord struct {
	AppID       int64
	Name        string
	Categories  []string
	Genres      []string
	RequiredAge int
	Publisher   string
}

// SalesFact is one sales snapshot from fact_sales.
// A nil playtime is a NULL cell in the store.
type SalesFact struct {
	AppID          int64
	PeakCCU        int64
	AvgPlaytime    *int64
	MedianPlaytime *int64
}

// Pair joins a game with one of its facts. Fact is nil when the mode only
// reads dim_game, or when the game has no facts at all.
type Pair struct {
	Game GameRecord
	Fact *SalesFact
}

// Row is one grouped, aggregated output row: a categorical label and one
// value per metric column of the mode.
type Row struct {
	Label  string            `json:"label"`
	Values []decimal.Decimal `json:"values"`
}

// RankedResult is the shape handed to the rendering layer: one label axis
// and one or more numeric series, already ordered and truncated.
type RankedResult struct {
	Mode    Mode     `json:"mode"`
	GroupBy GroupKey `json:"group_by"`
	Metrics []string `json:"metrics"`
	Rows    []Row    `json:"rows"`
}

// SplitTags parses a comma-joined tag column. Tags are trimmed, blanks are
// dropped and the original order is kept.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
