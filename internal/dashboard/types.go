package dashboard

import (
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
)

// Status tells an empty answer apart from a store that did not answer.
type Status string

const (
	StatusOK              Status = "ok"
	StatusEmpty           Status = "empty"
	StatusDataUnavailable Status = "data_unavailable"
)

// ReportRequest is one dashboard interaction: a report, the filter widgets'
// state and the N slider. A nil N selects the report's default.
type ReportRequest struct {
	Name   string
	Filter report.FilterSpec
	N      *int
}

// ReportResponse is the ranked result of one interaction.
type ReportResponse struct {
	InteractionID string              `json:"interaction_id"`
	Report        string              `json:"report"`
	Title         string              `json:"title"`
	N             int                 `json:"n"`
	Filter        report.FilterSpec   `json:"filter"`
	Status        Status              `json:"status"`
	Result        report.RankedResult `json:"result"`
}

// OverviewResponse holds every catalog report run against the same filter.
type OverviewResponse struct {
	InteractionID string           `json:"interaction_id"`
	Status        Status           `json:"status"`
	Reports       []ReportResponse `json:"reports"`
}

// TagsResponse lists the values available to a filter widget.
type TagsResponse struct {
	Values []string `json:"values"`
}
