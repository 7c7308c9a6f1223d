package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/score"
)

func TestCalculateIndexHighRiskShift(t *testing.T) {
	index, zone := score.CalculateIndex(schema.ShiftAttributes{
		HoursSlept:    4,
		ShiftType:     schema.NightShift,
		ShiftHours:    12,
		PatientsCount: 18,
		StressLevel:   8,
	})

	// 25 sleep + 25 night + 15 length + 10 patients + 16 stress
	assert.Equal(t, 91, index, "wrong index")
	assert.Equal(t, schema.ZoneRed, zone, "wrong zone")
}

func TestCalculateIndexLowRiskShift(t *testing.T) {
	index, zone := score.CalculateIndex(schema.ShiftAttributes{
		HoursSlept:    8,
		ShiftType:     schema.DayShift,
		ShiftHours:    8,
		PatientsCount: 5,
		StressLevel:   2,
	})

	// 0 sleep + 10 day + 5 length + 0 patients + 4 stress
	assert.Equal(t, 19, index, "wrong index")
	assert.Equal(t, schema.ZoneGreen, zone, "wrong zone")
}

func TestCalculateIndexClampedToMax(t *testing.T) {
	index, zone := score.CalculateIndex(schema.ShiftAttributes{
		HoursSlept:    1,
		ShiftType:     schema.NightShift,
		ShiftHours:    24,
		PatientsCount: 30,
		StressLevel:   10,
	})

	assert.Equal(t, score.MaxIndex, index, "index must be clamped to 100")
	assert.Equal(t, schema.ZoneRed, zone, "wrong zone")
}

func TestCalculateIndexBounded(t *testing.T) {
	for sleep := 0.0; sleep <= 24; sleep += 1.5 {
		for stress := 1; stress <= 10; stress++ {
			for _, st := range []schema.ShiftType{schema.DayShift, schema.NightShift} {
				index, zone := score.CalculateIndex(schema.ShiftAttributes{
					HoursSlept:    sleep,
					ShiftType:     st,
					ShiftHours:    12,
					PatientsCount: 12,
					StressLevel:   stress,
				})
				assert.True(t, index >= 0 && index <= 100, "index out of range")
				assert.Equal(t, score.ZoneFromIndex(index), zone, "zone must be derived from index")
			}
		}
	}
}

func TestSleepPointsMonotonic(t *testing.T) {
	prev := score.SleepPoints(0)
	for h := 0.5; h <= 24; h += 0.5 {
		p := score.SleepPoints(h)
		assert.True(t, p <= prev, "more sleep must never score worse")
		prev = p
	}
}

func TestLengthPointsMonotonic(t *testing.T) {
	prev := score.LengthPoints(1)
	for h := 2; h <= 24; h++ {
		p := score.LengthPoints(h)
		assert.True(t, p >= prev, "longer shifts must never score better")
		prev = p
	}
}

func TestStressPointsMonotonic(t *testing.T) {
	prev := score.StressPoints(1)
	for s := 2; s <= 10; s++ {
		p := score.StressPoints(s)
		assert.True(t, p >= prev, "higher stress must never score better")
		prev = p
	}
	assert.Equal(t, score.MaxStressPoints, score.StressPoints(10), "wrong stress cap")
}

func TestZoneBands(t *testing.T) {
	assert.Equal(t, schema.ZoneGreen, score.ZoneFromIndex(0), "wrong zone")
	assert.Equal(t, schema.ZoneGreen, score.ZoneFromIndex(39), "wrong zone")
	assert.Equal(t, schema.ZoneYellow, score.ZoneFromIndex(40), "wrong zone")
	assert.Equal(t, schema.ZoneYellow, score.ZoneFromIndex(69), "wrong zone")
	assert.Equal(t, schema.ZoneRed, score.ZoneFromIndex(70), "wrong zone")
	assert.Equal(t, schema.ZoneRed, score.ZoneFromIndex(100), "wrong zone")
}
