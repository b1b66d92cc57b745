package models

// UsersResponse wraps the full user collection
// swagger:model UsersResponse
type UsersResponse struct {
	Users []User `json:"users"`
}

// SuccessResponse reports the outcome of an update or delete
// swagger:model SuccessResponse
type SuccessResponse struct {
	// example: true
	Success bool `json:"success"`
}

// ErrorResponse represents a client or server error
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: first_name is required
	Error string `json:"error"`
}
