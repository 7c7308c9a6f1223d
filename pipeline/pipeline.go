package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/safeshift-health/safeshift-api/external/insight"
	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/score"
	"github.com/safeshift-health/safeshift-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "pipeline")
}

// insightTimeout bounds every optional text-generation call so a slow
// insight service can never block the shift write path.
const insightTimeout = 3 * time.Second

// Pipeline runs the risk assessment flow: scoring a shift, re-scanning
// a worker's recent history for hazardous patterns, and forecasting the
// risk trajectory. All collaborators are injected; the pipeline keeps
// no state besides the per-worker serialization locks.
type Pipeline struct {
	history store.History
	alerts  store.AlertStore
	insight insight.Insight

	mu      sync.Mutex
	workers map[string]*sync.Mutex
}

func New(history store.History, alerts store.AlertStore, ins insight.Insight) *Pipeline {
	return &Pipeline{
		history: history,
		alerts:  alerts,
		insight: ins,
		workers: map[string]*sync.Mutex{},
	}
}

// workerLock returns the mutex serializing scans for one worker.
// Different workers proceed in parallel.
func (p *Pipeline) workerLock(workerID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.workers[workerID]
	if !ok {
		l = &sync.Mutex{}
		p.workers[workerID] = l
	}
	return l
}

// ScoreShift validates a shift's attributes and computes its risk index
// and zone. Out-of-range attributes are rejected here, before the
// scoring tables ever see them.
func (p *Pipeline) ScoreShift(attrs schema.ShiftAttributes) (int, schema.Zone, error) {
	if err := attrs.Validate(); err != nil {
		return 0, "", err
	}

	index, zone := score.CalculateIndex(attrs)
	return index, zone, nil
}

// ScanPatterns re-evaluates a worker's trailing 14-day window and
// persists every triggered finding as an alert. Saving is idempotent
// per (worker, kind): an open unresolved alert is refreshed, never
// duplicated. Store failures propagate so a finding is never silently
// lost; insight failures never do.
func (p *Pipeline) ScanPatterns(ctx context.Context, workerID string) ([]schema.Alert, error) {
	l := p.workerLock(workerID)
	l.Lock()
	defer l.Unlock()

	shifts, err := p.history.GetRecentShifts(workerID, schema.PatternWindowDays)
	if err != nil {
		return nil, err
	}

	findings := score.EvaluatePatterns(shifts)
	if len(findings) == 0 {
		return []schema.Alert{}, nil
	}

	alerts := make([]schema.Alert, 0, len(findings))
	for _, f := range findings {
		alert, err := p.emit(ctx, workerID, f)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *alert)
	}

	return alerts, nil
}

// emit persists one finding through the alert store, optionally
// enriching high and critical findings with generated text. The
// deterministic description always stands when the insight service is
// absent, slow, or failing.
func (p *Pipeline) emit(ctx context.Context, workerID string, f score.Finding) (*schema.Alert, error) {
	description := f.Description

	if wantsInsight(f.Severity) && p.insight != nil && p.insight.Available() {
		callCtx, cancel := context.WithTimeout(ctx, insightTimeout)
		text, err := p.insight.Explain(callCtx, insight.Context{
			AlertType:   f.Type,
			Severity:    f.Severity,
			Description: f.Description,
		})
		cancel()

		if err != nil {
			log.WithFields(logrus.Fields{
				"worker": workerID,
				"type":   f.Type,
				"error":  err,
			}).Warn("insight explanation failed, keeping deterministic description")
		} else if text != "" {
			description = text
		}
	}

	alert := schema.Alert{
		WorkerID:    workerID,
		Type:        f.Type,
		Severity:    f.Severity,
		Message:     f.Message,
		Description: description,
		DetectedAt:  time.Now().UTC(),
	}

	if _, err := p.alerts.SaveAlert(&alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func wantsInsight(s schema.Severity) bool {
	return s == schema.SeverityHigh || s == schema.SeverityCritical
}

// Forecast fits the worker's 30-day risk trajectory and projects it
// daysAhead. Thin history is not an error; it yields a zero-confidence
// insufficient-data result.
func (p *Pipeline) Forecast(workerID string, daysAhead int) (*schema.Forecast, error) {
	shifts, err := p.history.GetRecentShifts(workerID, schema.ForecastWindowDays)
	if err != nil {
		return nil, err
	}

	f := score.Forecast(shifts, daysAhead)
	return &f, nil
}

// ShiftTexts produces the explanation and tips attached to a freshly
// scored shift. With the insight service available both come from it;
// otherwise both fall back to deterministic text built from the scored
// fields.
func (p *Pipeline) ShiftTexts(ctx context.Context, attrs schema.ShiftAttributes, index int, zone schema.Zone) (string, string) {
	ic := insight.Context{
		Index:      index,
		Zone:       zone,
		Attributes: attrs,
	}

	if p.insight == nil || !p.insight.Available() {
		return fallbackExplanation(index, zone), fallbackTips()
	}

	callCtx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	explanation, err := p.insight.Explain(callCtx, ic)
	if err != nil || explanation == "" {
		explanation = fallbackExplanation(index, zone)
	}

	tips, err := p.insight.Tips(callCtx, ic)
	if err != nil || tips == "" {
		tips = fallbackTips()
	}

	return explanation, tips
}
