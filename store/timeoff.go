package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/safeshift-health/safeshift-api/schema"
)

// RequestTimeOff files a pending time-off request for a worker.
func (s *SafeShiftStore) RequestTimeOff(workerID string, start, end time.Time, reason schema.TimeOffReason, notes string) (*schema.TimeOffRequest, error) {
	r := schema.TimeOffRequest{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    schema.TimeOffPending,
		Notes:     notes,
	}

	if err := s.ormDB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SafeShiftStore) ListTimeOff(workerID string) ([]schema.TimeOffRequest, error) {
	requests := make([]schema.TimeOffRequest, 0)
	err := s.ormDB.
		Where("worker_id = ?", workerID).
		Order("start_date desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// DecideTimeOff moves a pending request to approved or rejected.
func (s *SafeShiftStore) DecideTimeOff(requestID string, status schema.TimeOffStatus) error {
	result := s.ormDB.Model(&schema.TimeOffRequest{}).
		Where("id = ? AND status = ?", requestID, schema.TimeOffPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}
