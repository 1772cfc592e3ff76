package dashboard

import (
	"errors"
	"net/http"

	httperr "github.com/bonitofshh/MCO1-STADVDB/internal/core/errors"
	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	"github.com/gin-gonic/gin"
)

// filterQuery is the widget state carried in the query string. Every list
// parameter may be repeated or given as a comma-separated list.
type filterQuery struct {
	Categories []string `form:"category"`
	Exclude    []string `form:"exclude"`
	Genres     []string `form:"genre"`
	Ages       []string `form:"age"`
	N          *int     `form:"n"`
}

func (q filterQuery) spec() report.FilterSpec {
	return report.FilterSpec{
		IncludedCategories: splitParams(q.Categories),
		ExcludedCategories: splitParams(q.Exclude),
		Genres:             splitParams(q.Genres),
		AgeBuckets:         splitParams(q.Ages),
	}
}

func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, report.SplitTags(v)...)
	}
	return out
}

// RegisterRoutes registers all dashboard API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.GET("/reports", s.HandleListReports)
	v1.GET("/reports/:name", s.HandleRunReport)
	v1.GET("/overview", s.HandleOverview)
	v1.GET("/categories", s.HandleListCategories)
	v1.GET("/genres", s.HandleListGenres)
}

// HandleListReports handles GET /v1/reports
func (s *Service) HandleListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": s.Reports()})
}

// HandleRunReport handles GET /v1/reports/:name
// Query parameters: category, exclude, genre, age, n
func (s *Service) HandleRunReport(c *gin.Context) {
	var query filterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.RunReport(c.Request.Context(), ReportRequest{
		Name:   c.Param("name"),
		Filter: query.spec(),
		N:      query.N,
	})
	if err != nil {
		writeError(c, err, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleOverview handles GET /v1/overview
// Query parameters: category, exclude, genre, age, n
func (s *Service) HandleOverview(c *gin.Context) {
	var query filterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.Overview(c.Request.Context(), query.spec(), query.N)
	if err != nil {
		writeError(c, err, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleListCategories handles GET /v1/categories
func (s *Service) HandleListCategories(c *gin.Context) {
	tags, err := s.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, TagsResponse{Values: tags})
}

// HandleListGenres handles GET /v1/genres
func (s *Service) HandleListGenres(c *gin.Context) {
	tags, err := s.Genres(c.Request.Context())
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, TagsResponse{Values: tags})
}

// writeError maps service errors to status codes. When the store was
// unavailable and a body was produced, the empty result is sent with 503 so
// clients can still render "no data".
func writeError(c *gin.Context, err error, body interface{}) {
	switch {
	case errors.Is(err, ErrReportNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpReportNotFoundError,
			Message:   "Unknown report",
			Details:   err.Error(),
		})
	case errors.Is(err, report.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidArgumentError,
			Message:   "Invalid dashboard request",
			Details:   err.Error(),
		})
	case errors.Is(err, report.ErrDataUnavailable):
		if !isNilBody(body) {
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpDataUnavailableError,
			Message:   "Data store unavailable",
			Details:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to serve dashboard request",
			Details:   err.Error(),
		})
	}
}

func isNilBody(body interface{}) bool {
	switch b := body.(type) {
	case nil:
		return true
	case *ReportResponse:
		return b == nil
	case *OverviewResponse:
		return b == nil
	default:
		return false
	}
}
