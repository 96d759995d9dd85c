package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sangamhr/kyc-portal/internal"
)

// UserRepository is the read surface the verifier needs.
type UserRepository interface {
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*User, error)
}

// Service is the credential verifier: employee code lookup plus bcrypt
// comparison. It distinguishes exactly two failure kinds so login flashes can
// say whether the code or the password was wrong, and nothing more.
type Service struct {
	userRepo                  UserRepository
	bcryptCost                int
	allowLoginAfterSubmission bool
	logger                    *slog.Logger
}

type Options struct {
	BCryptCost int
	// AllowLoginAfterSubmission mirrors the app config of the same name.
	AllowLoginAfterSubmission bool
}

func NewService(userRepo UserRepository, opts Options, logger *slog.Logger) *Service {
	cost := opts.BCryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:                  userRepo,
		bcryptCost:                cost,
		allowLoginAfterSubmission: opts.AllowLoginAfterSubmission,
		logger:                    logger,
	}
}

// Authenticate validates the login form and returns the full user record.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmployeeCode(ctx, dto.EmployeeCode)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrUnknownEmployeeCode
		}
		s.logger.Error("credential lookup failed", "employee_code", dto.EmployeeCode, "error", err)
		return nil, internal.NewStoreError("failed to look up credentials", err)
	}

	if !s.allowLoginAfterSubmission && u.KYCSubmitted {
		s.logger.Info("login rejected for submitted user", "employee_code", u.EmployeeCode)
		return nil, internal.ErrLoginLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidPassword
	}

	s.logger.Info("authenticated user", "employee_code", u.EmployeeCode, "is_admin", u.IsAdmin, "kyc_submitted", u.KYCSubmitted)
	return u, nil
}

// HashPassword creates a bcrypt hash of the password. Used by the seeder.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
