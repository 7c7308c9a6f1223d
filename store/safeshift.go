package store

import (
	"errors"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/safeshift-health/safeshift-api/schema"
)

var (
	ErrAccountTaken       = errors.New("an account with this email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTimeOffNotFound    = errors.New("time off request not found")
)

// safeshift main datastore for worker records
type SafeShiftCore interface {
	Ping() error

	// Account
	RegisterAccount(email, password, firstName, lastName string, role schema.WorkerRole, department string) (*schema.Account, error)
	AuthenticateAccount(email, password string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	UpdateAccountProfile(id, firstName, lastName, department string) error
	DeactivateAccount(id string) error

	// Time off
	RequestTimeOff(workerID string, start, end time.Time, reason schema.TimeOffReason, notes string) (*schema.TimeOffRequest, error)
	ListTimeOff(workerID string) ([]schema.TimeOffRequest, error)
	DecideTimeOff(requestID string, status schema.TimeOffStatus) error
}

// SafeShiftStore is an implementation of SafeShiftCore
type SafeShiftStore struct {
	ormDB *gorm.DB
}

func NewSafeShiftStore(ormDB *gorm.DB) *SafeShiftStore {
	return &SafeShiftStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SafeShiftStore) Ping() error {
	return s.ormDB.DB().Ping()
}
