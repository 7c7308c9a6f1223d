package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safeshift-health/safeshift-api/schema"
)

// AlertStore persists pattern findings as burnout alerts. SaveAlert is
// the AlertEmitter's storage target.
type AlertStore interface {
	SaveAlert(alert *schema.Alert) (string, error)
	ListActiveAlerts(workerID string, limit int) ([]schema.Alert, error)
	ResolveAlert(workerID, alertID, action, note string) error
	AlertSummary(workerID string) (*schema.AlertSummary, error)
}

// SaveAlert upserts an alert keyed on (worker, type, unresolved). While
// a prior finding of the same kind is still open, a re-scan refreshes
// its severity and text instead of creating a duplicate. Once the prior
// one is resolved, a new document is inserted.
func (m *mongoDB) SaveAlert(alert *schema.Alert) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AlertCollection)

	filter := bson.M{
		"worker_id":   alert.WorkerID,
		"alert_type":  alert.Type,
		"is_resolved": false,
	}
	update := bson.M{
		"$set": bson.M{
			"severity":    alert.Severity,
			"message":     alert.Message,
			"description": alert.Description,
			"detected_at": alert.DetectedAt,
		},
		"$setOnInsert": bson.M{
			"id": uuid.New().String(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved schema.Alert
	if err := c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"worker":   saved.WorkerID,
		"type":     saved.Type,
		"severity": saved.Severity,
	}).Info("saved burnout alert")

	alert.ID = saved.ID
	return saved.ID, nil
}

// ListActiveAlerts returns a worker's unresolved alerts, worst severity
// first, most recent first within a severity.
func (m *mongoDB) ListActiveAlerts(workerID string, limit int) ([]schema.Alert, error) {
	alerts, err := m.activeAlerts(workerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := schema.SeverityRank[alerts[i].Severity], schema.SeverityRank[alerts[j].Severity]
		if ri != rj {
			return ri > rj
		}
		return alerts[i].DetectedAt.After(alerts[j].DetectedAt)
	})

	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

func (m *mongoDB) ResolveAlert(workerID, alertID, action, note string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AlertCollection)

	if action == "" {
		action = "acknowledged"
	}

	result, err := c.UpdateOne(ctx,
		bson.M{"id": alertID, "worker_id": workerID, "is_resolved": false},
		bson.M{"$set": bson.M{
			"is_resolved":       true,
			"resolved_at":       time.Now().UTC(),
			"resolution_action": action,
			"resolution_note":   note,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (m *mongoDB) AlertSummary(workerID string) (*schema.AlertSummary, error) {
	alerts, err := m.activeAlerts(workerID)
	if err != nil {
		return nil, err
	}

	summary := schema.AlertSummary{
		TotalActive: len(alerts),
		BySeverity:  map[schema.Severity]int{},
		ByType:      map[schema.AlertType]int{},
	}
	for _, a := range alerts {
		summary.BySeverity[a.Severity]++
		summary.ByType[a.Type]++
	}
	summary.HasCritical = summary.BySeverity[schema.SeverityCritical] > 0
	summary.HasHigh = summary.BySeverity[schema.SeverityHigh] > 0

	return &summary, nil
}

func (m *mongoDB) activeAlerts(workerID string) ([]schema.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AlertCollection)

	cur, err := c.Find(ctx, bson.M{"worker_id": workerID, "is_resolved": false})
	if err != nil {
		return nil, err
	}

	alerts := make([]schema.Alert, 0)
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
