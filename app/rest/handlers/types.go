package handlers

// ErrorResponse is the error payload returned by every handler. It carries
// the stable error code and a human message; identifiers are opaque and
// email addresses never appear here.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
