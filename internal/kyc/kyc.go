package kyc

import (
	"context"

	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
)

// Repository is the KYC record store contract. Submit performs the two-write
// submission (insert record, flip the user flag) as one atomic unit.
type Repository interface {
	Submit(ctx context.Context, record *kycDatamodel.Record) error
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*kycDatamodel.Record, error)
	GetAll(ctx context.Context) ([]*kycDatamodel.Record, error)
}
