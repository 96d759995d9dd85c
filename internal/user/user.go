package user

import "time"

// User is the application-facing identity record. PasswordHash never leaves
// the server; the rest is what /user-details returns as JSON.
type User struct {
	ID           int64     `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	KYCSubmitted bool      `json:"kyc_submitted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
