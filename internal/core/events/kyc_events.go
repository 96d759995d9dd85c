package events

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeKYCSubmitted = "kyc.submitted"

type KYCSubmittedEvent struct {
	BaseEvent
	EmployeeCode string    `json:"employee_code"`
	RecordID     int64     `json:"record_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func NewKYCSubmittedEvent(employeeCode string, recordID int64, submittedAt time.Time) *KYCSubmittedEvent {
	return &KYCSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeKYCSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_code": employeeCode,
				"record_id":     recordID,
				"submitted_at":  submittedAt,
			},
		},
		EmployeeCode: employeeCode,
		RecordID:     recordID,
		SubmittedAt:  submittedAt,
	}
}
