package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidQueryError    = "invalid_query"
	HttpInvalidArgumentError = "invalid_argument"
	HttpReportNotFoundError  = "report_not_found"
	HttpDataUnavailableError = "data_unavailable"
)

// ErrorResponse is the error response body for dashboard API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
