package schema

import "time"

type AlertType string

const (
	ConsecutiveNights  AlertType = "consecutive_nights"
	ChronicLowSleep    AlertType = "chronic_low_sleep"
	RisingStressTrend  AlertType = "rising_stress_trend"
	FrequentHighRisk   AlertType = "frequent_high_risk"
	ExtremeSingleShift AlertType = "extreme_single_shift"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank orders severities for sorting and escalation checks.
// Higher is worse.
var SeverityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

const AlertCollection = "burnoutAlerts"

// Alert is a persisted finding that a worker's recent shift history
// matches a hazardous pattern. At most one unresolved alert exists per
// (worker, type); a re-scan updates the open one instead of duplicating
// it. Resolution is a supervisor workflow, never automatic.
type Alert struct {
	ID               string     `json:"id" bson:"id"`
	WorkerID         string     `json:"worker_id" bson:"worker_id"`
	Type             AlertType  `json:"alert_type" bson:"alert_type"`
	Severity         Severity   `json:"severity" bson:"severity"`
	Message          string     `json:"message" bson:"message"`
	Description      string     `json:"description" bson:"description"`
	IsResolved       bool       `json:"is_resolved" bson:"is_resolved"`
	DetectedAt       time.Time  `json:"detected_at" bson:"detected_at"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
	ResolutionAction string     `json:"resolution_action,omitempty" bson:"resolution_action,omitempty"`
	ResolutionNote   string     `json:"resolution_note,omitempty" bson:"resolution_note,omitempty"`
}

// AlertSummary aggregates a worker's open alerts for the dashboard.
type AlertSummary struct {
	TotalActive int               `json:"total_active"`
	BySeverity  map[Severity]int  `json:"by_severity"`
	ByType      map[AlertType]int `json:"by_type"`
	HasCritical bool              `json:"has_critical"`
	HasHigh     bool              `json:"has_high"`
}
