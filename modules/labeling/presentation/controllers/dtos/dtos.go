package dtos

// APIError is the uniform error envelope of the labeling API.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
	Details any               `json:"details,omitempty"`
}
