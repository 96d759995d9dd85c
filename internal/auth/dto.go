package auth

import "net/url"

// LoginDTO is the transport shape of the login form.
type LoginDTO struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func LoginDTOFromForm(form url.Values) LoginDTO {
	return LoginDTO{
		EmployeeCode: form.Get("employee_code"),
		Password:     form.Get("password"),
	}
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.EmployeeCode == "" {
		return ValidationError{Msg: "employee code is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
