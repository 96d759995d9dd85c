package user

import "time"

// User is one row in the users table. Accounts are provisioned out of band;
// this application only ever reads them and flips KYCSubmitted.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code;uniqueIndex;not null"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false"`
	KYCSubmitted bool      `gorm:"column:kyc_submitted;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}
