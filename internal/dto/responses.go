package dto

// ErrorResponse is the body gin handlers write for failed requests.
type ErrorResponse struct {
	Error      string `json:"error"`
	Kind       string `json:"kind"`
	StatusCode int    `json:"status_code,omitempty"`
	Field      string `json:"field,omitempty"`
}
