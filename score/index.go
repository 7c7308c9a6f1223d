package score

import (
	"github.com/safeshift-health/safeshift-api/schema"
)

// Contribution caps of the five index components. The weights favor
// shift type at 25 points; stress is capped at 20.
const (
	MaxSleepPoints     = 30
	MaxShiftTypePoints = 25
	MaxLengthPoints    = 20
	MaxPatientsPoints  = 15
	MaxStressPoints    = 20

	MaxIndex = 100
)

// Zone bands applied to the final index. A single system-wide table;
// never tuned per call.
const (
	YellowZoneFloor = 40
	RedZoneFloor    = 70
)

// band maps a half-open attribute range to a point contribution. Bands
// are evaluated in order and the first match wins, so each table must be
// sorted from the worst range to the best.
type band struct {
	limit  float64
	points int
}

// sleepBands: fewer hours slept before the shift contribute more points.
// A shift preceded by 7 or more hours of sleep contributes nothing.
var sleepBands = []band{
	{limit: 4, points: 30},
	{limit: 5, points: 25},
	{limit: 6, points: 20},
	{limit: 7, points: 10},
}

// lengthBands: thresholds are inclusive lower bounds.
var lengthBands = []band{
	{limit: 24, points: 20},
	{limit: 12, points: 15},
	{limit: 8, points: 5},
}

// patientsBands: thresholds are exclusive lower bounds.
var patientsBands = []band{
	{limit: 20, points: 15},
	{limit: 15, points: 10},
	{limit: 10, points: 5},
}

// SleepPoints returns the sleep-deficit contribution.
func SleepPoints(hoursSlept float64) int {
	for _, b := range sleepBands {
		if hoursSlept < b.limit {
			return b.points
		}
	}
	return 0
}

// ShiftTypePoints returns the circadian-load contribution. Night shifts
// carry a fixed heavier weight than day shifts.
func ShiftTypePoints(shiftType schema.ShiftType) int {
	if shiftType == schema.NightShift {
		return MaxShiftTypePoints
	}
	return 10
}

// LengthPoints returns the shift-duration contribution.
func LengthPoints(shiftHours int) int {
	for _, b := range lengthBands {
		if float64(shiftHours) >= b.limit {
			return b.points
		}
	}
	return 0
}

// PatientsPoints returns the workload contribution.
func PatientsPoints(patientsCount int) int {
	for _, b := range patientsBands {
		if float64(patientsCount) > b.limit {
			return b.points
		}
	}
	return 0
}

// StressPoints scales the 1-10 self-reported stress linearly onto the
// 0-20 contribution range.
func StressPoints(stressLevel int) int {
	return stressLevel * MaxStressPoints / 10
}

// CalculateIndex converts one shift's attributes into the 0-100 risk
// index and its zone. Inputs must be validated by the caller; the
// function itself is deterministic and side-effect free.
func CalculateIndex(attrs schema.ShiftAttributes) (int, schema.Zone) {
	index := SleepPoints(attrs.HoursSlept) +
		ShiftTypePoints(attrs.ShiftType) +
		LengthPoints(attrs.ShiftHours) +
		PatientsPoints(attrs.PatientsCount) +
		StressPoints(attrs.StressLevel)

	if index > MaxIndex {
		index = MaxIndex
	}

	return index, ZoneFromIndex(index)
}

// ZoneFromIndex maps an index onto its zone. The bands do not overlap:
// green 0-39, yellow 40-69, red 70-100.
func ZoneFromIndex(index int) schema.Zone {
	switch {
	case index < YellowZoneFloor:
		return schema.ZoneGreen
	case index < RedZoneFloor:
		return schema.ZoneYellow
	default:
		return schema.ZoneRed
	}
}
