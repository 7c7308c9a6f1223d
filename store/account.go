package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/safeshift-health/safeshift-api/schema"
)

// RegisterAccount creates a healthcare worker account with a bcrypt
// password hash.
func (s *SafeShiftStore) RegisterAccount(email, password, firstName, lastName string, role schema.WorkerRole, department string) (*schema.Account, error) {
	var existing schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrAccountTaken
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Department:   department,
		IsActive:     true,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// AuthenticateAccount checks an email/password pair and returns the
// account when it matches. Deactivated accounts cannot authenticate.
func (s *SafeShiftStore) AuthenticateAccount(email, password string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ? AND is_active = ?", email, true).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &a, nil
}

// GetAccount returns an account instance for a given worker id
func (s *SafeShiftStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountProfile updates the mutable profile fields of an account
func (s *SafeShiftStore) UpdateAccountProfile(id, firstName, lastName, department string) error {
	result := s.ormDB.Model(&schema.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"department": department,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeactivateAccount flags an account inactive. Shift history and alerts
// are kept; deletion is not a concern of this system.
func (s *SafeShiftStore) DeactivateAccount(id string) error {
	result := s.ormDB.Model(&schema.Account{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
