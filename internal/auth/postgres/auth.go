package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/auth"
	userDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/user"
)

// Repository serves the credential verifier and the session middleware. Both
// read the users table; neither ever writes it.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmployeeCode(ctx context.Context, employeeCode string) (*auth.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("employee_code = ?", employeeCode).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toAuthUser(&row), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toAuthUser(&row), nil
}

func toAuthUser(row *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:           row.ID,
		EmployeeCode: row.EmployeeCode,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		KYCSubmitted: row.KYCSubmitted,
	}
}
