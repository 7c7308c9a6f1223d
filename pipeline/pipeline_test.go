package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/safeshift-health/safeshift-api/external/insight"
	insightmocks "github.com/safeshift-health/safeshift-api/external/mocks"
	"github.com/safeshift-health/safeshift-api/pipeline"
	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/score"
	"github.com/safeshift-health/safeshift-api/store/mocks"
)

func day(offset int) time.Time {
	return time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func nightShift(offset int, hoursSlept float64) schema.Shift {
	attrs := schema.ShiftAttributes{
		ShiftDate:     day(offset),
		HoursSlept:    hoursSlept,
		ShiftType:     schema.NightShift,
		ShiftHours:    8,
		PatientsCount: 5,
		StressLevel:   3,
	}
	index, zone := score.CalculateIndex(attrs)
	return schema.Shift{WorkerID: "w1", Attributes: attrs, Index: index, Zone: zone}
}

func nights(count int, hoursSlept float64) []schema.Shift {
	shifts := make([]schema.Shift, 0, count)
	for i := 0; i < count; i++ {
		shifts = append(shifts, nightShift(i, hoursSlept))
	}
	return shifts
}

func TestScoreShiftValidates(t *testing.T) {
	p := pipeline.New(nil, nil, nil)

	_, _, err := p.ScoreShift(schema.ShiftAttributes{
		ShiftDate:     day(0),
		HoursSlept:    8,
		ShiftType:     schema.DayShift,
		ShiftHours:    8,
		PatientsCount: 5,
		StressLevel:   11,
	})
	assert.Equal(t, schema.ErrInvalidStressLevel, err, "out-of-range stress must be rejected")

	index, zone, err := p.ScoreShift(schema.ShiftAttributes{
		ShiftDate:     day(0),
		HoursSlept:    8,
		ShiftType:     schema.DayShift,
		ShiftHours:    8,
		PatientsCount: 5,
		StressLevel:   2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 19, index, "wrong index")
	assert.Equal(t, schema.ZoneGreen, zone, "wrong zone")
}

func TestScanPatternsEmitsFindings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	ins := insightmocks.NewMockInsight(ctl)

	// three calendar-consecutive nights, well slept: exactly one
	// finding of medium severity, so the insight port stays untouched
	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return(nights(3, 7), nil).Times(1)
	m.EXPECT().SaveAlert(gomock.Any()).DoAndReturn(func(a *schema.Alert) (string, error) {
		a.ID = "alert-1"
		return a.ID, nil
	}).Times(1)

	p := pipeline.New(m, m, ins)
	alerts, err := p.ScanPatterns(context.Background(), "w1")

	assert.NoError(t, err)
	assert.Len(t, alerts, 1, "wrong alert count")
	assert.Equal(t, schema.ConsecutiveNights, alerts[0].Type, "wrong alert type")
	assert.Equal(t, schema.SeverityMedium, alerts[0].Severity, "wrong severity")
	assert.Equal(t, "w1", alerts[0].WorkerID, "wrong worker")
	assert.NotEmpty(t, alerts[0].Description, "deterministic description required")
}

func TestScanPatternsDegradedWithoutInsight(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	ins := insightmocks.NewMockInsight(ctl)

	// five consecutive nights escalate to critical, which would ask
	// the insight port for text if it were available
	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return(nights(5, 7), nil).Times(1)
	ins.EXPECT().Available().Return(false).Times(1)
	m.EXPECT().SaveAlert(gomock.Any()).DoAndReturn(func(a *schema.Alert) (string, error) {
		a.ID = "alert-1"
		return a.ID, nil
	}).Times(1)

	p := pipeline.New(m, m, ins)
	alerts, err := p.ScanPatterns(context.Background(), "w1")

	assert.NoError(t, err, "emission must succeed without the insight port")
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity, "wrong severity")
	assert.NotEmpty(t, alerts[0].Description, "fallback description must be non-empty")
}

func TestScanPatternsInsightFailureKeepsFallback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	ins := insightmocks.NewMockInsight(ctl)

	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return(nights(5, 7), nil).Times(1)
	ins.EXPECT().Available().Return(true).Times(1)
	ins.EXPECT().Explain(gomock.Any(), gomock.Any()).Return("", errors.New("insight timeout")).Times(1)

	var saved schema.Alert
	m.EXPECT().SaveAlert(gomock.Any()).DoAndReturn(func(a *schema.Alert) (string, error) {
		saved = *a
		return "alert-1", nil
	}).Times(1)

	p := pipeline.New(m, m, ins)
	_, err := p.ScanPatterns(context.Background(), "w1")

	assert.NoError(t, err, "insight failures must never fail the scan")
	assert.NotEmpty(t, saved.Description, "deterministic description must survive")
}

func TestScanPatternsInsightTextUsed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	ins := insightmocks.NewMockInsight(ctl)

	generated := "Five nights in a row leave no room for recovery. Request a day shift."

	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return(nights(5, 7), nil).Times(1)
	ins.EXPECT().Available().Return(true).Times(1)
	ins.EXPECT().Explain(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ic insight.Context) (string, error) {
		assert.Equal(t, schema.ConsecutiveNights, ic.AlertType, "wrong structured context")
		return generated, nil
	}).Times(1)
	m.EXPECT().SaveAlert(gomock.Any()).Return("alert-1", nil).Times(1)

	p := pipeline.New(m, m, ins)
	alerts, err := p.ScanPatterns(context.Background(), "w1")

	assert.NoError(t, err)
	assert.Equal(t, generated, alerts[0].Description, "generated text must replace the fallback")
}

func TestScanPatternsStoreFailurePropagates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return(nights(3, 7), nil).Times(1)
	m.EXPECT().SaveAlert(gomock.Any()).Return("", errors.New("mongo down")).Times(1)

	p := pipeline.New(m, m, nil)
	_, err := p.ScanPatterns(context.Background(), "w1")

	assert.Error(t, err, "a lost alert must be reported to the caller")
}

func TestScanPatternsEmptyHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().GetRecentShifts("w1", schema.PatternWindowDays).Return([]schema.Shift{}, nil).Times(1)

	p := pipeline.New(m, m, nil)
	alerts, err := p.ScanPatterns(context.Background(), "w1")

	assert.NoError(t, err)
	assert.Len(t, alerts, 0, "no history, no alerts")
}

func TestForecast(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	shifts := make([]schema.Shift, 0, 6)
	for i := 0; i < 6; i++ {
		shifts = append(shifts, schema.Shift{
			WorkerID:   "w1",
			Attributes: schema.ShiftAttributes{ShiftDate: day(i)},
			Index:      40 + i*6,
		})
	}
	m.EXPECT().GetRecentShifts("w1", schema.ForecastWindowDays).Return(shifts, nil).Times(1)

	p := pipeline.New(m, m, nil)
	f, err := p.Forecast("w1", 14)

	assert.NoError(t, err)
	assert.True(t, f.Slope > 0, "rising history must forecast a positive slope")
	assert.NotNil(t, f.DaysUntilCritical, "worsening trend must estimate days until critical")
}

func TestForecastInsufficientData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().GetRecentShifts("w1", schema.ForecastWindowDays).Return([]schema.Shift{}, nil).Times(1)

	p := pipeline.New(m, m, nil)
	f, err := p.Forecast("w1", 14)

	assert.NoError(t, err, "thin history is not an error")
	assert.Equal(t, schema.PredictionInsufficientData, f.Prediction, "wrong prediction")
	assert.Equal(t, float64(0), f.Confidence, "wrong confidence")
}

func TestShiftTextsDegraded(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ins := insightmocks.NewMockInsight(ctl)
	ins.EXPECT().Available().Return(false).Times(1)

	p := pipeline.New(nil, nil, ins)
	explanation, tips := p.ShiftTexts(context.Background(), schema.ShiftAttributes{}, 91, schema.ZoneRed)

	assert.NotEmpty(t, explanation, "fallback explanation required")
	assert.NotEmpty(t, tips, "fallback tips required")
}
