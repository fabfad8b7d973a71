package dto

// ErrorResponse is the error body returned by every failing endpoint.
// Errors is present only for validation failures, keyed by field name.
type ErrorResponse struct {
	Title   string              `json:"title"`
	Status  int                 `json:"status"`
	Detail  string              `json:"detail"`
	TraceID string              `json:"traceId"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
