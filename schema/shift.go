package schema

import (
	"errors"
	"time"
)

type ShiftType string

const (
	DayShift   ShiftType = "day"
	NightShift ShiftType = "night"
)

type Zone string

const (
	ZoneGreen  Zone = "green"
	ZoneYellow Zone = "yellow"
	ZoneRed    Zone = "red"
)

const (
	ShiftCollection = "shifts"

	// PatternWindowDays is the trailing window scanned for hazardous
	// patterns after every shift write.
	PatternWindowDays = 14

	// ForecastWindowDays is the trailing window used for trend fitting.
	ForecastWindowDays = 30
)

var (
	ErrInvalidHoursSlept    = errors.New("hours slept must be between 0 and 24")
	ErrInvalidShiftType     = errors.New("shift type must be day or night")
	ErrInvalidShiftHours    = errors.New("shift length must be between 1 and 24 hours")
	ErrInvalidPatientsCount = errors.New("patients count must not be negative")
	ErrInvalidStressLevel   = errors.New("stress level must be between 1 and 10")
	ErrInvalidShiftDate     = errors.New("shift date is required")
)

// ShiftAttributes are the worker-reported fields of a single shift. The
// five scoring inputs are validated here before they ever reach the
// scoring functions.
type ShiftAttributes struct {
	ShiftDate     time.Time `json:"shift_date" bson:"shift_date"`
	HoursSlept    float64   `json:"hours_slept" bson:"hours_slept"`
	ShiftType     ShiftType `json:"shift_type" bson:"shift_type"`
	ShiftHours    int       `json:"shift_hours" bson:"shift_hours"`
	PatientsCount int       `json:"patients_count" bson:"patients_count"`
	StressLevel   int       `json:"stress_level" bson:"stress_level"`
	Note          string    `json:"note,omitempty" bson:"note,omitempty"`
}

func (a ShiftAttributes) Validate() error {
	if a.ShiftDate.IsZero() {
		return ErrInvalidShiftDate
	}
	if a.HoursSlept < 0 || a.HoursSlept > 24 {
		return ErrInvalidHoursSlept
	}
	if a.ShiftType != DayShift && a.ShiftType != NightShift {
		return ErrInvalidShiftType
	}
	if a.ShiftHours < 1 || a.ShiftHours > 24 {
		return ErrInvalidShiftHours
	}
	if a.PatientsCount < 0 {
		return ErrInvalidPatientsCount
	}
	if a.StressLevel < 1 || a.StressLevel > 10 {
		return ErrInvalidStressLevel
	}
	return nil
}

// ScoringEqual reports whether two attribute sets agree on every
// scoring-relevant field. A note-only edit keeps the derived index and
// zone untouched.
func (a ShiftAttributes) ScoringEqual(b ShiftAttributes) bool {
	return a.HoursSlept == b.HoursSlept &&
		a.ShiftType == b.ShiftType &&
		a.ShiftHours == b.ShiftHours &&
		a.PatientsCount == b.PatientsCount &&
		a.StressLevel == b.StressLevel
}

// Shift is one worker's scored work period. Index, Zone, Explanation and
// Tips are derived fields owned by the risk pipeline and are never
// user-editable.
type Shift struct {
	ID          string          `json:"id" bson:"id"`
	WorkerID    string          `json:"worker_id" bson:"worker_id"`
	Attributes  ShiftAttributes `json:"attributes" bson:",inline"`
	Index       int             `json:"index" bson:"index"`
	Zone        Zone            `json:"zone" bson:"zone"`
	Explanation string          `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Tips        string          `json:"tips,omitempty" bson:"tips,omitempty"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
