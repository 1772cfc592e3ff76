package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Mode names one aggregation of the game/sales relation.
type Mode string

const (
	ModeHighestPeakCCU        Mode = "highest_peak_ccu"
	ModeAverageMedianPlaytime Mode = "average_median_playtime"
	ModeRequiredAgeHistogram  Mode = "required_age_histogram"
	ModeTotalGamesByPublisher Mode = "total_games_by_publisher"
)

// GroupKey is the column a mode groups by.
type GroupKey string

const (
	GroupByName        GroupKey = "name"
	GroupByRequiredAge GroupKey = "required_age"
	GroupByPublisher   GroupKey = "publisher"
)

// Metric column names, in the order they appear in Row.Values.
const (
	MetricHighestPeakCCU  = "highest_peak_ccu"
	MetricAveragePlaytime = "average_playtime"
	MetricMedianPlaytime  = "median_playtime"
	MetricTotalCount      = "total_count"
	MetricTotalGames      = "total_games"
)

// observation is one pair's contribution to a group, one value per metric.
type observation []decimal.Decimal

// ModeSpec describes how a mode groups and reduces.
// To add a mode: write its observe and fold functions and register it in modes.
type ModeSpec struct {
	GroupKey GroupKey
	Metrics  []string

	// UsesFacts is false for modes that read dim_game only.
	UsesFacts bool

	// distinctGames counts each AppID at most once per group.
	distinctGames bool

	// observe extracts the group label and the pair's observation.
	// ok=false drops the pair before grouping.
	observe func(p Pair) (label string, obs observation, ok bool)

	// fold reduces all observations of one group into the row values.
	fold func(obs []observation) []decimal.Decimal
}

var modes = map[Mode]ModeSpec{
	ModeHighestPeakCCU: {
		GroupKey:  GroupByName,
		Metrics:   []string{MetricHighestPeakCCU},
		UsesFacts: true,
		observe: func(p Pair) (string, observation, bool) {
			if p.Fact == nil {
				return "", nil, false
			}
			return p.Game.Name, observation{decimal.NewFromInt(p.Fact.PeakCCU)}, true
		},
		fold: foldMax,
	},
	ModeAverageMedianPlaytime: {
		GroupKey:  GroupByName,
		Metrics:   []string{MetricAveragePlaytime, MetricMedianPlaytime},
		UsesFacts: true,
		observe: func(p Pair) (string, observation, bool) {
			// Both playtime columns must be present.
			if p.Fact == nil || p.Fact.AvgPlaytime == nil || p.Fact.MedianPlaytime == nil {
				return "", nil, false
			}
			return p.Game.Name, observation{
				decimal.NewFromInt(*p.Fact.AvgPlaytime),
				decimal.NewFromInt(*p.Fact.MedianPlaytime),
			}, true
		},
		// Mean of the per-snapshot averages, not a weighted per-session mean.
		fold: foldMean,
	},
	ModeRequiredAgeHistogram: {
		GroupKey:      GroupByRequiredAge,
		Metrics:       []string{MetricTotalCount},
		distinctGames: true,
		observe: func(p Pair) (string, observation, bool) {
			return strconv.Itoa(p.Game.RequiredAge), observation{decimal.NewFromInt(1)}, true
		},
		fold: foldCount,
	},
	ModeTotalGamesByPublisher: {
		GroupKey:      GroupByPublisher,
		Metrics:       []string{MetricTotalGames},
		distinctGames: true,
		observe: func(p Pair) (string, observation, bool) {
			publisher := strings.TrimSpace(p.Game.Publisher)
			if publisher == "" {
				return "", nil, false
			}
			return publisher, observation{decimal.NewFromInt(1)}, true
		},
		fold: foldCount,
	},
}

// Spec returns the registered spec for m.
func (m Mode) Spec() (ModeSpec, bool) {
	spec, ok := modes[m]
	return spec, ok
}

// Valid reports whether m is a registered mode.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", invalidArgumentf("unknown mode %q", s)
	}
	return m, nil
}

// Modes lists every registered mode in a fixed order.
func Modes() []Mode {
	return []Mode{
		ModeHighestPeakCCU,
		ModeAverageMedianPlaytime,
		ModeRequiredAgeHistogram,
		ModeTotalGamesByPublisher,
	}
}

func foldMax(obs []observation) []decimal.Decimal {
	best := obs[0][0]
	for _, o := range obs[1:] {
		if o[0].GreaterThan(best) {
			best = o[0]
		}
	}
	return []decimal.Decimal{best}
}

func foldMean(obs []observation) []decimal.Decimal {
	width := len(obs[0])
	sums := make([]decimal.Decimal, width)
	for i := range sums {
		sums[i] = decimal.Zero
	}
	for _, o := range obs {
		for i := 0; i < width; i++ {
			sums[i] = sums[i].Add(o[i])
		}
	}
	n := decimal.NewFromInt(int64(len(obs)))
	for i := range sums {
		sums[i] = sums[i].Div(n)
	}
	return sums
}

func foldCount(obs []observation) []decimal.Decimal {
	return []decimal.Decimal{decimal.NewFromInt(int64(len(obs)))}
}
