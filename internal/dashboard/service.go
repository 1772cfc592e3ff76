package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// overviewConcurrency bounds how many reports of one overview hit the store at once.
	overviewConcurrency = 4

	// tagLookupTimeout bounds a shared taxonomy lookup, which outlives any
	// single caller's cancellation.
	tagLookupTimeout = 10 * time.Second
)

// ErrReportNotFound marks a request for a report the catalog does not define.
var ErrReportNotFound = errors.New("report not found")

// Service runs dashboard interactions: filter, aggregate, rank.
// Interactions share no mutable state, so a Service is safe for concurrent use.
type Service struct {
	store    storage.AggregateStore
	taxonomy storage.Taxonomy
	catalog  *report.Catalog
	metrics  *Metrics
	lookups  singleflight.Group
	newID    func() string
}

// NewService creates a dashboard service. metrics may be nil.
func NewService(
	store storage.AggregateStore,
	taxonomy storage.Taxonomy,
	catalog *report.Catalog,
	metrics *Metrics,
) *Service {
	if catalog == nil {
		catalog = report.DefaultCatalog()
	}

	return &Service{
		store:    store,
		taxonomy: taxonomy,
		catalog:  catalog,
		metrics:  metrics,
		newID:    uuid.NewString,
	}
}

// Reports lists the catalog.
func (s *Service) Reports() []report.Definition {
	return s.catalog.List()
}

// RunReport executes one interaction.
//
// Caller mistakes (unknown report, N <= 0, unknown age bucket) return an
// error wrapping report.ErrInvalidArgument or ErrReportNotFound and no
// response. Any N >= 1 is accepted; fewer groups than N returns them all.
// A store failure returns BOTH a response with an empty result and status
// data_unavailable, and an error wrapping report.ErrDataUnavailable.
func (s *Service) RunReport(ctx context.Context, req ReportRequest) (*ReportResponse, error) {
	def, ok := s.catalog.Get(req.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrReportNotFound, req.Name)
	}

	n, err := def.ResolveN(req.N)
	if err != nil {
		return nil, err
	}

	p, err := report.Compile(req.Filter)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, s.newID(), def, n, p, req.Filter)
}

// Overview runs every catalog report against the same filter concurrently.
// A nil n selects each report's default. If any report could not reach the
// store, the full response is still returned together with an error wrapping
// report.ErrDataUnavailable. Status is empty only when every report is.
func (s *Service) Overview(ctx context.Context, filter report.FilterSpec, n *int) (*OverviewResponse, error) {
	p, err := report.Compile(filter)
	if err != nil {
		return nil, err
	}

	defs := s.catalog.List()
	ns := make([]int, len(defs))
	for i, def := range defs {
		if ns[i], err = def.ResolveN(n); err != nil {
			return nil, err
		}
	}

	interactionID := s.newID()
	results := make([]ReportResponse, len(defs))
	unavailable := make([]error, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)
	for i, def := range defs {
		g.Go(func() error {
			resp, err := s.run(gctx, interactionID, def, ns[i], p, filter)
			if err != nil && resp == nil {
				return err
			}
			results[i] = *resp
			unavailable[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &OverviewResponse{
		InteractionID: interactionID,
		Status:        StatusOK,
		Reports:       results,
	}
	if err := errors.Join(unavailable...); err != nil {
		out.Status = StatusDataUnavailable
		return out, err
	}

	allEmpty := len(results) > 0
	for _, r := range results {
		if r.Status != StatusEmpty {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		out.Status = StatusEmpty
	}
	return out, nil
}

// Categories lists every category tag. Concurrent lookups share one query.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.lookupTags(ctx, "categories", s.taxonomy.ListCategories)
}

// Genres lists every genre tag. Concurrent lookups share one query.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	return s.lookupTags(ctx, "genres", s.taxonomy.ListGenres)
}

func (s *Service) lookupTags(ctx context.Context, key string, list func(context.Context) ([]string, error)) ([]string, error) {
	v, err, shared := s.lookups.Do(key, func() (interface{}, error) {
		// Coalesced callers must not inherit the first caller's cancellation.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tagLookupTimeout)
		defer cancel()
		return list(lookupCtx)
	})
	if err != nil {
		slog.Warn("[Dashboard] Tag lookup failed", "lookup", key, "error", err)
		if !errors.Is(err, report.ErrDataUnavailable) {
			err = fmt.Errorf("%w: %w", report.ErrDataUnavailable, err)
		}
		return nil, fmt.Errorf("list %s: %w", key, err)
	}

	tags, _ := v.([]string)
	if shared {
		slog.Debug("[Dashboard] Tag lookup shared", "lookup", key, "count", len(tags))
	}

	// Callers own the returned slice.
	out := make([]string, len(tags))
	copy(out, tags)
	return out, nil
}

// run queries the store for one report and ranks the rows.
func (s *Service) run(
	ctx context.Context,
	interactionID string,
	def report.Definition,
	n int,
	p report.Predicate,
	filter report.FilterSpec,
) (*ReportResponse, error) {
	spec, ok := def.Mode.Spec()
	if !ok {
		return nil, fmt.Errorf("%w: report %q has unknown mode %q", report.ErrInvalidArgument, def.Name, def.Mode)
	}

	resp := &ReportResponse{
		InteractionID: interactionID,
		Report:        def.Name,
		Title:         def.Title,
		N:             n,
		Filter:        filter,
		Status:        StatusOK,
		Result: report.RankedResult{
			Mode:    def.Mode,
			GroupBy: spec.GroupKey,
			Metrics: spec.Metrics,
			Rows:    []report.Row{},
		},
	}

	start := time.Now()
	rows, err := s.store.QueryAggregates(ctx, p, def.Mode)
	elapsed := time.Since(start)
	s.metrics.observeQuery(def.Name, elapsed)

	if err != nil {
		if errors.Is(err, report.ErrInvalidArgument) {
			return nil, err
		}
		if !errors.Is(err, report.ErrDataUnavailable) {
			err = fmt.Errorf("%w: %w", report.ErrDataUnavailable, err)
		}

		resp.Status = StatusDataUnavailable
		s.metrics.observeRun(def.Name, resp.Status, 0)
		slog.Warn("[Dashboard] Store unavailable, returning empty result",
			"interaction_id", interactionID,
			"report", def.Name,
			"error", err)
		return resp, fmt.Errorf("report %s: %w", def.Name, err)
	}

	ranked, err := report.Rank(rows, 0, n)
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		resp.Status = StatusEmpty
	} else {
		resp.Result.Rows = ranked
	}
	s.metrics.observeRun(def.Name, resp.Status, len(ranked))

	slog.Info("[Dashboard] Report served",
		"interaction_id", interactionID,
		"report", def.Name,
		"n", n,
		"groups", len(rows),
		"rows", len(ranked),
		"status", resp.Status,
		"duration", elapsed)
	return resp, nil
}
