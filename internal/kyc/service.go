package kyc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sangamhr/kyc-portal/internal"
	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
	"github.com/sangamhr/kyc-portal/internal/core/events"
)

// Service handles the KYC submission workflow and the dashboard read paths.
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// Submit stores the KYC record for the given employee code and marks the user
// submitted, atomically. The code comes from the session, never from the form.
// A second submission for the same code fails with ErrAlreadySubmitted and
// leaves the store untouched.
func (s *Service) Submit(ctx context.Context, employeeCode string, dto SubmitKYCDTO) (*kycDatamodel.Record, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("kyc form validation failed", "employee_code", employeeCode, "error", err)
		return nil, err
	}

	record := dto.ToRecord(employeeCode, time.Now())

	if err := s.repo.Submit(ctx, record); err != nil {
		if errors.Is(err, internal.ErrAlreadySubmitted) {
			s.logger.Warn("duplicate kyc submission rejected", "employee_code", employeeCode)
			return nil, internal.ErrAlreadySubmitted
		}
		s.logger.Error("kyc submission failed", "employee_code", employeeCode, "error", err)
		return nil, internal.NewStoreError("failed to store KYC record", err)
	}

	s.logger.Info("kyc record submitted", "employee_code", employeeCode, "record_id", record.ID)
	s.bus.Publish(ctx, events.NewKYCSubmittedEvent(employeeCode, record.ID, record.SubmittedAt))

	return record, nil
}

// RecordFor returns the single record for an employee code.
func (s *Service) RecordFor(ctx context.Context, employeeCode string) (*kycDatamodel.Record, error) {
	record, err := s.repo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, internal.ErrKYCRecordNotFound) {
			return nil, internal.ErrKYCRecordNotFound
		}
		s.logger.Error("failed to load kyc record", "employee_code", employeeCode, "error", err)
		return nil, internal.NewStoreError("failed to load KYC record", err)
	}
	return record, nil
}

// AllRecords returns every submitted record for the admin dashboard.
func (s *Service) AllRecords(ctx context.Context) ([]*kycDatamodel.Record, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list kyc records", "error", err)
		return nil, internal.NewStoreError("failed to list KYC records", err)
	}
	return records, nil
}
