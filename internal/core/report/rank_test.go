package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func row(label string, vals ...int64) Row {
	r := Row{Label: label}
	for _, v := range vals {
		r.Values = append(r.Values, decimal.NewFromInt(v))
	}
	return r
}

func labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestRank(t *testing.T) {
	rows := []Row{row("a", 10), row("b", 30), row("c", 20), row("d", 30), row("e", 5)}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top 3 keeps tie order", n: 3, want: []string{"b", "d", "c"}},
		{name: "exact size", n: 5, want: []string{"b", "d", "c", "a", "e"}},
		{name: "fewer rows than n", n: 50, want: []string{"b", "d", "c", "a", "e"}},
		{name: "top 1", n: 1, want: []string{"b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Rank(rows, 0, tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, labels(got))
		})
	}
}

func TestRank_Idempotent(t *testing.T) {
	rows := []Row{row("a", 1), row("b", 3), row("c", 3), row("d", 2)}

	first, err := Rank(rows, 0, 3)
	require.NoError(t, err)
	second, err := Rank(first, 0, 3)
	require.NoError(t, err)
	require.Equal(t, labels(first), labels(second))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	rows := []Row{row("a", 1), row("b", 3)}
	_, err := Rank(rows, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, labels(rows))
}

func TestRank_SecondaryMetric(t *testing.T) {
	rows := []Row{row("a", 100, 1), row("b", 50, 9), row("short", 70)}
	got, err := Rank(rows, 1, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, labels(got))
}

func TestRank_InvalidN(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Rank([]Row{row("a", 1)}, 0, n)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestRank_Empty(t *testing.T) {
	got, err := Rank(nil, 0, 5)
	require.NoError(t, err)
	require.Empty(t, got)
}
