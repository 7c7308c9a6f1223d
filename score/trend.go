package score

import (
	"fmt"
	"math"

	"github.com/safeshift-health/safeshift-api/schema"
)

const (
	// ForecastMinShifts is the smallest history that supports a fit.
	ForecastMinShifts = 3

	// ForecastHorizonDays bounds how far ahead a critical crossing is
	// extrapolated; crossings beyond it are not reported.
	ForecastHorizonDays = 90

	// confidenceSpread normalizes the fit's residual error onto the
	// 0-1 confidence range: an RMSE at or above it means no confidence.
	confidenceSpread = 25.0

	recentAverageShifts = 7
)

// Forecast fits a linear trend of index over elapsed days and projects
// it daysAhead past the last observation. Shifts must be ordered by
// date ascending. Too little history never fails; it yields an
// insufficient-data result with zero confidence.
func Forecast(shifts []schema.Shift, daysAhead int) schema.Forecast {
	if len(shifts) < ForecastMinShifts {
		return schema.Forecast{
			Prediction: schema.PredictionInsufficientData,
			Confidence: 0,
			Reasoning:  "not enough logged shifts to fit a trend; log more shifts",
		}
	}

	first := shifts[0].Attributes.ShiftDate
	xs := make([]float64, len(shifts))
	ys := make([]float64, len(shifts))
	for i, s := range shifts {
		xs[i] = s.Attributes.ShiftDate.Sub(first).Hours() / 24
		ys[i] = float64(s.Index)
	}

	slope, intercept := linearFit(xs, ys)

	lastX := xs[len(xs)-1]
	predicted := intercept + slope*(lastX+float64(daysAhead))
	predicted = math.Max(0, math.Min(float64(MaxIndex), predicted))
	predictedIndex := int(math.Round(predicted))

	confidence := 1 - rmse(xs, ys, slope, intercept)/confidenceSpread
	confidence = math.Max(0, math.Min(1, confidence))

	currentIndex := shifts[len(shifts)-1].Index
	recentAvg := recentAverage(ys)

	prediction := schema.PredictionLowRisk
	switch {
	case predictedIndex >= RedZoneFloor:
		prediction = schema.PredictionHighRisk
	case predictedIndex >= YellowZoneFloor:
		prediction = schema.PredictionMediumRisk
	}

	return schema.Forecast{
		Prediction:        prediction,
		PredictedIndex:    predictedIndex,
		Confidence:        math.Round(confidence*100) / 100,
		DaysUntilCritical: daysUntilCritical(slope, intercept, lastX),
		Slope:             math.Round(slope*1000) / 1000,
		RecentAverage:     math.Round(recentAvg*10) / 10,
		CurrentIndex:      currentIndex,
		Reasoning:         reasoning(slope, recentAvg, predictedIndex, daysAhead),
	}
}

// linearFit returns the ordinary-least-squares slope and intercept of y
// over x. A degenerate x spread yields a flat line at the mean.
func linearFit(xs, ys []float64) (float64, float64) {
	n := float64(len(xs))

	var xMean, yMean float64
	for i := range xs {
		xMean += xs[i]
		yMean += ys[i]
	}
	xMean /= n
	yMean /= n

	var num, den float64
	for i := range xs {
		num += (xs[i] - xMean) * (ys[i] - yMean)
		den += (xs[i] - xMean) * (xs[i] - xMean)
	}

	if den == 0 {
		return 0, yMean
	}

	slope := num / den
	return slope, yMean - slope*xMean
}

func rmse(xs, ys []float64, slope, intercept float64) float64 {
	var sum float64
	for i := range xs {
		r := ys[i] - (intercept + slope*xs[i])
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// daysUntilCritical solves the fitted line against the red-zone floor.
// Nil means the trajectory is not worsening or the crossing is beyond
// the projection horizon.
func daysUntilCritical(slope, intercept, lastX float64) *int {
	if slope <= 0 {
		return nil
	}

	current := intercept + slope*lastX
	if current >= RedZoneFloor {
		zero := 0
		return &zero
	}

	days := int(math.Ceil((RedZoneFloor - current) / slope))
	if days > ForecastHorizonDays {
		return nil
	}
	if days < 1 {
		days = 1
	}
	return &days
}

func recentAverage(ys []float64) float64 {
	start := len(ys) - recentAverageShifts
	if start < 0 {
		start = 0
	}

	var sum float64
	for _, y := range ys[start:] {
		sum += y
	}
	return sum / float64(len(ys)-start)
}

// reasoning is a deterministic structured summary of the fit. Free-text
// generation belongs to the insight service, never here.
func reasoning(slope, recentAvg float64, predictedIndex, daysAhead int) string {
	trend := "stable"
	switch {
	case slope > 0.5:
		trend = "rising"
	case slope < -0.5:
		trend = "falling"
	}

	return fmt.Sprintf("risk index trend is %s (slope %.2f per day); recent average %.0f; predicted index in %d days: %d",
		trend, slope, recentAvg, daysAhead, predictedIndex)
}
