package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sangamhr/kyc-portal/internal"
	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
	userDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/user"
	"github.com/sangamhr/kyc-portal/internal/kyc"
)

// KYCRepository implements the kyc.Repository interface using GORM.
type KYCRepository struct {
	db *gorm.DB
}

func NewKYCRepository(db *gorm.DB) kyc.Repository {
	return &KYCRepository{db: db}
}

// Submit inserts the record and flips users.kyc_submitted in one transaction.
// The guarded UPDATE (kyc_submitted = false) makes a concurrent or repeated
// submission roll the insert back instead of producing a duplicate row.
func (r *KYCRepository) Submit(ctx context.Context, record *kycDatamodel.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		res := tx.Model(&userDatamodel.User{}).
			Where("employee_code = ? AND kyc_submitted = ?", record.EmployeeCode, false).
			Update("kyc_submitted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrAlreadySubmitted
		}
		return nil
	})
}

func (r *KYCRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (*kycDatamodel.Record, error) {
	var record kycDatamodel.Record
	err := r.db.WithContext(ctx).Where("employee_code = ?", employeeCode).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrKYCRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *KYCRepository) GetAll(ctx context.Context) ([]*kycDatamodel.Record, error) {
	var records []*kycDatamodel.Record
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&records).Error
	return records, err
}
