package schema

type Prediction string

const (
	PredictionLowRisk          Prediction = "low_risk"
	PredictionMediumRisk       Prediction = "medium_risk"
	PredictionHighRisk         Prediction = "high_risk"
	PredictionInsufficientData Prediction = "insufficient_data"
)

// Forecast is the ephemeral result of projecting a worker's risk
// trajectory. It is computed on demand and never persisted.
type Forecast struct {
	Prediction        Prediction `json:"prediction"`
	PredictedIndex    int        `json:"predicted_index"`
	Confidence        float64    `json:"confidence"`
	DaysUntilCritical *int       `json:"days_until_critical"`
	Slope             float64    `json:"slope"`
	RecentAverage     float64    `json:"recent_average"`
	CurrentIndex      int        `json:"current_index"`
	Reasoning         string     `json:"reasoning"`
}
