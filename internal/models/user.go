package models

// User represents a row of the users table.
type User struct {
	ID        int64  `json:"id" db:"id"`                 // Store-assigned primary key
	FirstName string `json:"first_name" db:"first_name"` // First name
	LastName  string `json:"last_name" db:"last_name"`   // Last name
}
