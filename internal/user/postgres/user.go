package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sangamhr/kyc-portal/internal"
	userDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/user"
	"github.com/sangamhr/kyc-portal/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *UserRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (*user.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("employee_code = ?", employeeCode).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func toDomain(row *userDatamodel.User) *user.User {
	return &user.User{
		ID:           row.ID,
		EmployeeCode: row.EmployeeCode,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		KYCSubmitted: row.KYCSubmitted,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
