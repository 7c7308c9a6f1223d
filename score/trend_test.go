package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/score"
)

func indexedShift(offset, index int) schema.Shift {
	return schema.Shift{
		WorkerID: "w1",
		Attributes: schema.ShiftAttributes{
			ShiftDate: day(offset),
		},
		Index: index,
		Zone:  score.ZoneFromIndex(index),
	}
}

func TestForecastInsufficientData(t *testing.T) {
	f := score.Forecast([]schema.Shift{indexedShift(0, 50), indexedShift(1, 60)}, 14)

	assert.Equal(t, schema.PredictionInsufficientData, f.Prediction, "wrong prediction")
	assert.Equal(t, float64(0), f.Confidence, "confidence must be zero")
	assert.Nil(t, f.DaysUntilCritical, "no extrapolation without data")
	assert.NotEmpty(t, f.Reasoning, "reasoning flag required")
}

func TestForecastRisingTrend(t *testing.T) {
	shifts := make([]schema.Shift, 0, 8)
	for i := 0; i < 8; i++ {
		shifts = append(shifts, indexedShift(i, 30+i*5))
	}

	f := score.Forecast(shifts, 14)

	assert.True(t, f.Slope > 0, "strictly increasing history must fit a positive slope")
	assert.NotNil(t, f.DaysUntilCritical, "worsening trajectory must report days until critical")
	assert.True(t, *f.DaysUntilCritical >= 1, "crossing must be at least a day away")
	assert.True(t, f.Confidence > 0.9, "a clean linear fit deserves high confidence")
	assert.Equal(t, 65, f.CurrentIndex, "wrong current index")
}

func TestForecastFlatTrend(t *testing.T) {
	shifts := make([]schema.Shift, 0, 8)
	for i := 0; i < 8; i++ {
		shifts = append(shifts, indexedShift(i, 45))
	}

	f := score.Forecast(shifts, 14)

	assert.Equal(t, float64(0), f.Slope, "flat history must fit a flat line")
	assert.Nil(t, f.DaysUntilCritical, "non-worsening trend must not report a crossing")
	assert.Equal(t, 45, f.PredictedIndex, "flat trend projects the same index")
	assert.Equal(t, schema.PredictionMediumRisk, f.Prediction, "wrong label")
}

func TestForecastImprovingTrend(t *testing.T) {
	shifts := make([]schema.Shift, 0, 8)
	for i := 0; i < 8; i++ {
		shifts = append(shifts, indexedShift(i, 80-i*5))
	}

	f := score.Forecast(shifts, 7)

	assert.True(t, f.Slope < 0, "improving history must fit a negative slope")
	assert.Nil(t, f.DaysUntilCritical, "improving trend must not report a crossing")
}

func TestForecastAlreadyCritical(t *testing.T) {
	shifts := []schema.Shift{
		indexedShift(0, 70),
		indexedShift(1, 75),
		indexedShift(2, 80),
	}

	f := score.Forecast(shifts, 7)

	assert.NotNil(t, f.DaysUntilCritical)
	assert.Equal(t, 0, *f.DaysUntilCritical, "already in the red zone means zero days")
	assert.Equal(t, schema.PredictionHighRisk, f.Prediction, "wrong label")
}

func TestForecastPredictedIndexClamped(t *testing.T) {
	shifts := []schema.Shift{
		indexedShift(0, 60),
		indexedShift(1, 75),
		indexedShift(2, 90),
	}

	f := score.Forecast(shifts, 30)

	assert.True(t, f.PredictedIndex <= 100, "prediction must be clamped")
	assert.Equal(t, schema.PredictionHighRisk, f.Prediction, "wrong label")
}

func TestForecastLabelMirrorsZoneBands(t *testing.T) {
	shifts := []schema.Shift{
		indexedShift(0, 20),
		indexedShift(1, 20),
		indexedShift(2, 20),
	}

	f := score.Forecast(shifts, 14)
	assert.Equal(t, schema.PredictionLowRisk, f.Prediction, "wrong label")
}
