package score

import (
	"fmt"
	"time"

	"github.com/safeshift-health/safeshift-api/schema"
)

// Tunable pattern thresholds. All apply to the trailing 14-day window.
const (
	// ConsecutiveNightsFloor is the shortest calendar-consecutive run
	// of night shifts that counts as a pattern.
	ConsecutiveNightsFloor = 3

	// LowSleepMeanThreshold is the mean hours-slept under which sleep
	// is considered chronically short.
	LowSleepMeanThreshold = 6.0

	// StressTrendMinShifts is the minimum number of shifts required
	// before a stress trend is evaluated at all.
	StressTrendMinShifts = 5
	// StressTrendMinDelta is the minimum rise between the first-half
	// and second-half stress averages; smaller deltas are noise.
	StressTrendMinDelta = 2.0

	// HighRiskShareThreshold is the fraction of yellow/red shifts in
	// the window over which fatigue is considered chronic.
	HighRiskShareThreshold = 0.7

	// ExtremeShiftIndex is the single-shift index at which one shift
	// alone is alarming regardless of trend.
	ExtremeShiftIndex = 85
)

// Finding is one detected hazardous pattern, not yet persisted.
type Finding struct {
	Type        schema.AlertType
	Severity    schema.Severity
	Message     string
	Description string
}

// EvaluatePatterns scans a worker's scored shift history, ordered by
// date ascending, and returns every pattern that triggers. Kinds never
// suppress one another. With fewer than two shifts only the
// extreme-single-shift check runs; the remaining patterns need history.
func EvaluatePatterns(shifts []schema.Shift) []Finding {
	findings := make([]Finding, 0)

	if f := checkExtremeShift(shifts); f != nil {
		findings = append(findings, *f)
	}

	if len(shifts) < 2 {
		return findings
	}

	if f := checkConsecutiveNights(shifts); f != nil {
		findings = append(findings, *f)
	}
	if f := checkChronicLowSleep(shifts); f != nil {
		findings = append(findings, *f)
	}
	if f := checkRisingStress(shifts); f != nil {
		findings = append(findings, *f)
	}
	if f := checkFrequentHighRisk(shifts); f != nil {
		findings = append(findings, *f)
	}

	return findings
}

// checkConsecutiveNights looks for the longest run of night shifts on
// adjacent calendar days. A day shift or a date gap breaks the streak.
func checkConsecutiveNights(shifts []schema.Shift) *Finding {
	longest, current := 0, 0
	var prevDate time.Time

	for _, s := range shifts {
		if s.Attributes.ShiftType != schema.NightShift {
			current = 0
			continue
		}

		if current > 0 && !s.Attributes.ShiftDate.Equal(prevDate.AddDate(0, 0, 1)) {
			current = 0
		}
		current++
		prevDate = s.Attributes.ShiftDate

		if current > longest {
			longest = current
		}
	}

	if longest < ConsecutiveNightsFloor {
		return nil
	}

	severity := schema.SeverityMedium
	switch {
	case longest >= 5:
		severity = schema.SeverityCritical
	case longest >= 4:
		severity = schema.SeverityHigh
	}

	return &Finding{
		Type:        schema.ConsecutiveNights,
		Severity:    severity,
		Message:     fmt.Sprintf("%d consecutive night shifts", longest),
		Description: fmt.Sprintf("You worked %d night shifts on consecutive days. Back-to-back nights significantly increase fatigue risk; consider requesting a day shift soon.", longest),
	}
}

func checkChronicLowSleep(shifts []schema.Shift) *Finding {
	var total float64
	for _, s := range shifts {
		total += s.Attributes.HoursSlept
	}
	mean := total / float64(len(shifts))

	if mean >= LowSleepMeanThreshold {
		return nil
	}

	severity := schema.SeverityMedium
	switch {
	case mean < 4:
		severity = schema.SeverityCritical
	case mean < 5:
		severity = schema.SeverityHigh
	}

	return &Finding{
		Type:        schema.ChronicLowSleep,
		Severity:    severity,
		Message:     fmt.Sprintf("average sleep %.1fh over the last two weeks", mean),
		Description: fmt.Sprintf("Your average sleep before shifts is %.1fh over the last two weeks, below the recommended 7-8h. Sustained short sleep greatly increases error risk.", mean),
	}
}

// checkRisingStress compares the first-half and second-half stress
// averages of the window. The delta threshold filters out noise; the
// exact statistical test is deliberately simple and tunable.
func checkRisingStress(shifts []schema.Shift) *Finding {
	if len(shifts) < StressTrendMinShifts {
		return nil
	}

	half := len(shifts) / 2
	var first, second float64
	for i, s := range shifts {
		if i < half {
			first += float64(s.Attributes.StressLevel)
		} else {
			second += float64(s.Attributes.StressLevel)
		}
	}
	avgFirst := first / float64(half)
	avgSecond := second / float64(len(shifts)-half)

	delta := avgSecond - avgFirst
	if delta < StressTrendMinDelta {
		return nil
	}

	severity := schema.SeverityMedium
	switch {
	case delta >= StressTrendMinDelta+2:
		severity = schema.SeverityCritical
	case delta >= StressTrendMinDelta+1:
		severity = schema.SeverityHigh
	}

	return &Finding{
		Type:        schema.RisingStressTrend,
		Severity:    severity,
		Message:     fmt.Sprintf("stress rising from %.1f to %.1f", avgFirst, avgSecond),
		Description: fmt.Sprintf("Your reported stress climbed from an average of %.1f to %.1f across the last two weeks. Take proactive recovery steps before the trend continues.", avgFirst, avgSecond),
	}
}

func checkFrequentHighRisk(shifts []schema.Shift) *Finding {
	var yellow, red int
	for _, s := range shifts {
		switch s.Zone {
		case schema.ZoneYellow:
			yellow++
		case schema.ZoneRed:
			red++
		}
	}

	total := len(shifts)
	highRiskShare := float64(yellow+red) / float64(total)
	if highRiskShare < HighRiskShareThreshold {
		return nil
	}

	redShare := float64(red) / float64(total)
	severity := schema.SeverityMedium
	switch {
	case redShare >= 0.8:
		severity = schema.SeverityCritical
	case redShare >= 0.5:
		severity = schema.SeverityHigh
	}

	return &Finding{
		Type:        schema.FrequentHighRisk,
		Severity:    severity,
		Message:     fmt.Sprintf("%d of %d shifts in yellow or red zone", yellow+red, total),
		Description: fmt.Sprintf("%d of your last %d shifts landed in the yellow or red zone. Your fatigue is chronic rather than incidental.", yellow+red, total),
	}
}

// checkExtremeShift flags any single shift at or above the critical
// single-shift index. It is the only pattern that fires on a window of
// one record.
func checkExtremeShift(shifts []schema.Shift) *Finding {
	max := -1
	for _, s := range shifts {
		if s.Index > max {
			max = s.Index
		}
	}

	if max < ExtremeShiftIndex {
		return nil
	}

	severity := schema.SeverityHigh
	if max >= 95 {
		severity = schema.SeverityCritical
	}

	return &Finding{
		Type:        schema.ExtremeSingleShift,
		Severity:    severity,
		Message:     fmt.Sprintf("shift with extreme risk index %d", max),
		Description: fmt.Sprintf("One of your recent shifts hit a risk index of %d. A single shift at this level calls for immediate recovery time.", max),
	}
}
