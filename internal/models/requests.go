package models

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// example: Ada
	FirstName string `json:"first_name" validate:"required,notblank"`

	// Last name
	// required: true
	// example: Lovelace
	LastName string `json:"last_name" validate:"required,notblank"`
}

// UpdateUserRequest represents the JSON body for a user update.
// Absent or empty fields keep their stored value.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	// example: Grace
	FirstName *string `json:"first_name,omitempty"`

	// Last name
	// example: Hopper
	LastName *string `json:"last_name,omitempty"`
}
