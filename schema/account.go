package schema

import (
	"time"
)

type WorkerRole string

const (
	RoleNurse   WorkerRole = "nurse"
	RoleDoctor  WorkerRole = "doctor"
	RoleStudent WorkerRole = "student"
)

// Account is a healthcare worker registered into the safeshift system.
type Account struct {
	ID           string     `json:"id" gorm:"type:uuid;primary_key"`
	Email        string     `json:"email" gorm:"unique_index;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         WorkerRole `json:"role"`
	Department   string     `json:"department"`
	HospitalID   *string    `json:"hospital_id"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Hospital struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	Name         string    `json:"name" gorm:"unique_index;not null"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

type TimeOffReason string

const (
	ReasonRestRecovery TimeOffReason = "rest_recovery"
	ReasonBurnoutRisk  TimeOffReason = "burnout_risk"
	ReasonPersonal     TimeOffReason = "personal"
)

type TimeOffRequest struct {
	ID        string        `json:"id" gorm:"type:uuid;primary_key"`
	WorkerID  string        `json:"worker_id" gorm:"index;not null"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Reason    TimeOffReason `json:"reason"`
	Status    TimeOffStatus `json:"status" gorm:"default:'pending'"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
