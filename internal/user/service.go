package user

import (
	"context"

	"github.com/sangamhr/kyc-portal/internal"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, internal.NewStoreError("failed to load user", err)
	}
	return u, nil
}

func (s *Service) GetByEmployeeCode(ctx context.Context, employeeCode string) (*User, error) {
	u, err := s.repo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, internal.NewStoreError("failed to load user", err)
	}
	return u, nil
}
