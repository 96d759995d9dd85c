package auth

// User is the identity the verifier and the session middleware work with.
// It carries the two routing flags alongside the credentials; the richer
// profile surface lives in the user package.
type User struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	KYCSubmitted bool   `json:"kyc_submitted"`
}
