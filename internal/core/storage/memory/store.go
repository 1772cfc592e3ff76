package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	"gopkg.in/yaml.v3"
)

// Store is an in-memory implementation of storage.Store over a fixed set of
// games and sales facts. Useful for testing and development.
type Store struct {
	mu    sync.RWMutex
	games []report.GameRecord
	facts []report.SalesFact
	down  error
}

// NewStore creates a store holding copies of games and facts.
func NewStore(games []report.GameRecord, facts []report.SalesFact) *Store {
	s := &Store{
		games: make([]report.GameRecord, len(games)),
		facts: make([]report.SalesFact, len(facts)),
	}
	copy(s.games, games)
	copy(s.facts, facts)
	return s
}

// seedFile is the on-disk YAML fixture shape. Tag columns are comma-joined
// strings, as they are in dim_game.
type seedFile struct {
	Games []struct {
		AppID       int64  `yaml:"app_id"`
		Name        string `yaml:"name"`
		Categories  string `yaml:"categories"`
		Genres      string `yaml:"genres"`
		RequiredAge int    `yaml:"required_age"`
		Publisher   string `yaml:"publisher"`
	} `yaml:"games"`
	Sales []struct {
		AppID          int64  `yaml:"app_id"`
		PeakCCU        int64  `yaml:"peak_ccu"`
		AvgPlaytime    *int64 `yaml:"average_playtime"`
		MedianPlaytime *int64 `yaml:"median_playtime"`
	} `yaml:"sales"`
}

// LoadSeedFile builds a store from a YAML fixture file.
func LoadSeedFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed builds a store from YAML fixture bytes.
func ParseSeed(data []byte) (*Store, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	ids := make(map[int64]bool, len(seed.Games))
	games := make([]report.GameRecord, 0, len(seed.Games))
	for _, g := range seed.Games {
		if ids[g.AppID] {
			return nil, fmt.Errorf("seed: duplicate app_id %d", g.AppID)
		}
		ids[g.AppID] = true
		games = append(games, report.GameRecord{
			AppID:       g.AppID,
			Name:        g.Name,
			Categories:  report.SplitTags(g.Categories),
			Genres:      report.SplitTags(g.Genres),
			RequiredAge: g.RequiredAge,
			Publisher:   g.Publisher,
		})
	}

	facts := make([]report.SalesFact, 0, len(seed.Sales))
	for _, f := range seed.Sales {
		if !ids[f.AppID] {
			return nil, fmt.Errorf("seed: sales row references unknown app_id %d", f.AppID)
		}
		facts = append(facts, report.SalesFact{
			AppID:          f.AppID,
			PeakCCU:        f.PeakCCU,
			AvgPlaytime:    f.AvgPlaytime,
			MedianPlaytime: f.MedianPlaytime,
		})
	}

	return NewStore(games, facts), nil
}

// SetUnavailable makes every read fail with report.ErrDataUnavailable wrapping
// cause; nil restores the store. Used to exercise outage handling.
func (s *Store) SetUnavailable(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = cause
}

func (s *Store) unavailable() error {
	if s.down == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", report.ErrDataUnavailable, s.down)
}

// QueryAggregates filters games with the predicate, joins their facts and
// aggregates them in memory.
func (s *Store) QueryAggregates(ctx context.Context, p report.Predicate, mode report.Mode) ([]report.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrDataUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.unavailable(); err != nil {
		return nil, err
	}

	matched := make([]report.GameRecord, 0, len(s.games))
	for _, g := range s.games {
		if p.Match(g) {
			matched = append(matched, g)
		}
	}

	return report.Aggregate(mode, report.Join(matched, s.facts))
}

// ListCategories returns every distinct category tag, sorted.
func (s *Store) ListCategories(_ context.Context) ([]string, error) {
	return s.distinct(func(g report.GameRecord) []string { return g.Categories })
}

// ListGenres returns every distinct genre tag, sorted.
func (s *Store) ListGenres(_ context.Context) ([]string, error) {
	return s.distinct(func(g report.GameRecord) []string { return g.Genres })
}

func (s *Store) distinct(tags func(report.GameRecord) []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.unavailable(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, g := range s.games {
		for _, tag := range tags(g) {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Ping reports the simulated availability.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unavailable()
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
