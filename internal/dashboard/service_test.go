package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	storagemocks "github.com/bonitofshh/MCO1-STADVDB/internal/mocks/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func row(label string, values ...int64) report.Row {
	r := report.Row{Label: label}
	for _, v := range values {
		r.Values = append(r.Values, decimal.NewFromInt(v))
	}
	return r
}

func intPtr(n int) *int { return &n }

func newTestService(t *testing.T) (*Service, *storagemocks.AggregateStore, *storagemocks.Taxonomy) {
	t.Helper()
	store := storagemocks.NewAggregateStore(t)
	taxonomy := storagemocks.NewTaxonomy(t)
	svc := NewService(store, taxonomy, report.DefaultCatalog(), NewMetrics(prometheus.NewRegistry()))
	svc.newID = func() string { return "interaction-1" }
	return svc, store, taxonomy
}

func TestService_RunReport_RanksPeakCCU(t *testing.T) {
	svc, store, _ := newTestService(t)

	// MAX per game already applied by the store: A=max(100,250), B=300.
	store.EXPECT().
		QueryAggregates(mock.Anything, report.Predicate{}, report.ModeHighestPeakCCU).
		Return([]report.Row{row("Game A", 250), row("Game B", 300)}, nil).
		Once()

	resp, err := svc.RunReport(context.Background(), ReportRequest{Name: "top_peak_ccu", N: intPtr(5)})
	require.NoError(t, err)
	require.Equal(t, StatusOK, resp.Status)
	require.Equal(t, "interaction-1", resp.InteractionID)
	require.Equal(t, report.GroupByName, resp.Result.GroupBy)
	require.Equal(t, []string{report.MetricHighestPeakCCU}, resp.Result.Metrics)
	require.Equal(t, []report.Row{row("Game B", 300), row("Game A", 250)}, resp.Result.Rows)
}

func TestService_RunReport_AcceptsNOutsideSliderRange(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		wantRows []report.Row
	}{
		{
			name:     "below slider minimum",
			n:        2,
			wantRows: []report.Row{row("Game B", 300), row("Game A", 250)},
		},
		{
			name:     "n of one",
			n:        1,
			wantRows: []report.Row{row("Game B", 300)},
		},
		{
			name:     "above slider maximum returns every group",
			n:        25,
			wantRows: []report.Row{row("Game B", 300), row("Game A", 250), row("Game C", 40)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, _ := newTestService(t)
			store.EXPECT().
				QueryAggregates(mock.Anything, report.Predicate{}, report.ModeHighestPeakCCU).
				Return([]report.Row{row("Game A", 250), row("Game B", 300), row("Game C", 40)}, nil).
				Once()

			resp, err := svc.RunReport(context.Background(), ReportRequest{Name: "top_peak_ccu", N: intPtr(tc.n)})
			require.NoError(t, err)
			require.Equal(t, tc.n, resp.N)
			require.Equal(t, tc.wantRows, resp.Result.Rows)
		})
	}
}

func TestService_RunReport_DefaultN(t *testing.T) {
	svc, store, _ := newTestService(t)

	var rows []report.Row
	for i := 1; i <= 8; i++ {
		rows = append(rows, row(fmt.Sprintf("Game %d", i), int64(i)))
	}
	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, report.ModeHighestPeakCCU).
		Return(rows, nil).
		Once()

	resp, err := svc.RunReport(context.Background(), ReportRequest{Name: "top_peak_ccu"})
	require.NoError(t, err)
	require.Equal(t, 5, resp.N)
	require.Len(t, resp.Result.Rows, 5)
	require.Equal(t, "Game 8", resp.Result.Rows[0].Label)
}

func TestService_RunReport_BindsCompiledPredicate(t *testing.T) {
	svc, store, _ := newTestService(t)

	want := report.Predicate{
		Include:   []string{"rpg"},
		Genres:    []string{"indie"},
		AgeRanges: []report.AgeRange{{Min: 8, Max: 15}},
	}
	store.EXPECT().
		QueryAggregates(mock.Anything, want, report.ModeTotalGamesByPublisher).
		Return([]report.Row{row("Studio One", 3)}, nil).
		Once()

	resp, err := svc.RunReport(context.Background(), ReportRequest{
		Name: "publishers_by_genre",
		Filter: report.FilterSpec{
			IncludedCategories: []string{" RPG "},
			Genres:             []string{"Indie"},
			AgeBuckets:         []string{"8-15 (Teens)"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Result.Rows, 1)
}

func TestService_RunReport_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		req     ReportRequest
		wantErr error
	}{
		{
			name:    "n zero",
			req:     ReportRequest{Name: "top_peak_ccu", N: intPtr(0)},
			wantErr: report.ErrInvalidArgument,
		},
		{
			name: "unknown age bucket",
			req: ReportRequest{
				Name:   "required_age",
				Filter: report.FilterSpec{AgeBuckets: []string{"senior"}},
			},
			wantErr: report.ErrInvalidArgument,
		},
		{
			name:    "unknown report",
			req:     ReportRequest{Name: "median_price"},
			wantErr: ErrReportNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// No store expectations: invalid input never reaches the store.
			svc, _, _ := newTestService(t)

			resp, err := svc.RunReport(context.Background(), tc.req)
			require.Nil(t, resp)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_RunReport_StoreUnavailable(t *testing.T) {
	svc, store, _ := newTestService(t)

	connErr := errors.New("dial tcp: connection refused")
	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, report.ModeAverageMedianPlaytime).
		Return(nil, connErr).
		Once()

	resp, err := svc.RunReport(context.Background(), ReportRequest{Name: "top_playtime"})
	require.ErrorIs(t, err, report.ErrDataUnavailable)
	require.ErrorIs(t, err, connErr)
	require.NotNil(t, resp)
	require.Equal(t, StatusDataUnavailable, resp.Status)
	require.Empty(t, resp.Result.Rows)
	require.Equal(t, []string{report.MetricAveragePlaytime, report.MetricMedianPlaytime}, resp.Result.Metrics)

	require.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.reportRuns.WithLabelValues("top_playtime", string(StatusDataUnavailable))))
}

func TestService_RunReport_EmptyIsNotUnavailable(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, report.ModeRequiredAgeHistogram).
		Return([]report.Row{}, nil).
		Once()

	resp, err := svc.RunReport(context.Background(), ReportRequest{Name: "required_age"})
	require.NoError(t, err)
	require.Equal(t, StatusEmpty, resp.Status)
	require.Empty(t, resp.Result.Rows)
}

func TestService_Overview(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ report.Predicate, mode report.Mode) ([]report.Row, error) {
			switch mode {
			case report.ModeAverageMedianPlaytime:
				return []report.Row{row("Game A", 120, 60)}, nil
			case report.ModeRequiredAgeHistogram:
				return []report.Row{row("0", 4), row("18", 2)}, nil
			default:
				return []report.Row{row("x", 1)}, nil
			}
		}).
		Times(4)

	resp, err := svc.Overview(context.Background(), report.FilterSpec{}, intPtr(2))
	require.NoError(t, err)
	require.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Reports, 4)

	names := make([]string, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		names = append(names, r.Report)
		require.Equal(t, "interaction-1", r.InteractionID)
	}
	require.Equal(t, []string{"publishers_by_genre", "required_age", "top_peak_ccu", "top_playtime"}, names)

	// A shared n applies to every report as given.
	for _, r := range resp.Reports {
		require.Equal(t, 2, r.N)
	}
	require.Len(t, resp.Reports[1].Result.Rows, 2)
}

func TestService_Overview_PartialOutage(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, report.ModeHighestPeakCCU).
		Return(nil, fmt.Errorf("%w: timeout", report.ErrDataUnavailable)).
		Once()
	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, mock.Anything).
		Return([]report.Row{row("x", 1)}, nil).
		Times(3)

	resp, err := svc.Overview(context.Background(), report.FilterSpec{}, nil)
	require.ErrorIs(t, err, report.ErrDataUnavailable)
	require.NotNil(t, resp)
	require.Equal(t, StatusDataUnavailable, resp.Status)
	require.Equal(t, StatusDataUnavailable, resp.Reports[2].Status)
	require.Equal(t, StatusOK, resp.Reports[0].Status)
}

func TestService_Overview_AllEmpty(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, mock.Anything).
		Return([]report.Row{}, nil).
		Times(4)

	resp, err := svc.Overview(context.Background(), report.FilterSpec{Genres: []string{"Nonexistent"}}, nil)
	require.NoError(t, err)
	require.Equal(t, StatusEmpty, resp.Status)
	for _, r := range resp.Reports {
		require.Equal(t, StatusEmpty, r.Status)
	}
}

func TestService_Overview_SomeEmptyIsOK(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, report.ModeTotalGamesByPublisher).
		Return([]report.Row{row("Studio One", 2)}, nil).
		Once()
	store.EXPECT().
		QueryAggregates(mock.Anything, mock.Anything, mock.Anything).
		Return([]report.Row{}, nil).
		Times(3)

	resp, err := svc.Overview(context.Background(), report.FilterSpec{}, nil)
	require.NoError(t, err)
	require.Equal(t, StatusOK, resp.Status)
}

func TestService_Overview_InvalidN(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Overview(context.Background(), report.FilterSpec{}, intPtr(-1))
	require.ErrorIs(t, err, report.ErrInvalidArgument)
}

func TestService_Taxonomy(t *testing.T) {
	svc, _, taxonomy := newTestService(t)

	taxonomy.EXPECT().ListGenres(mock.Anything).Return([]string{"Action", "Indie"}, nil).Once()
	genres, err := svc.Genres(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Action", "Indie"}, genres)

	taxonomy.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("connection reset")).Once()
	_, err = svc.Categories(context.Background())
	require.ErrorIs(t, err, report.ErrDataUnavailable)
}

func TestService_Taxonomy_IgnoresCallerCancellation(t *testing.T) {
	svc, _, taxonomy := newTestService(t)

	taxonomy.EXPECT().
		ListGenres(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]string, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, ok := ctx.Deadline(); !ok {
				return nil, errors.New("lookup context has no deadline")
			}
			return []string{"Action"}, nil
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	genres, err := svc.Genres(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Action"}, genres)
}
