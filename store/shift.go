package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safeshift-health/safeshift-api/schema"
)

// ShiftStore persists scored shift records. Derived fields (index,
// zone, insight texts) are written by the pipeline together with the
// worker-reported attributes.
type ShiftStore interface {
	CreateShift(shift *schema.Shift) error
	UpdateShift(shift *schema.Shift) error
	GetShift(workerID, shiftID string) (*schema.Shift, error)
}

func (m *mongoDB) CreateShift(shift *schema.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ShiftCollection)

	now := time.Now().UTC()
	shift.ID = uuid.New().String()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	_, err := c.InsertOne(ctx, shift)
	return err
}

func (m *mongoDB) UpdateShift(shift *schema.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ShiftCollection)

	shift.UpdatedAt = time.Now().UTC()

	result, err := c.ReplaceOne(ctx, bson.M{"id": shift.ID, "worker_id": shift.WorkerID}, shift)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func (m *mongoDB) GetShift(workerID, shiftID string) (*schema.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ShiftCollection)

	var shift schema.Shift
	err := c.FindOne(ctx, bson.M{"id": shiftID, "worker_id": workerID}).Decode(&shift)
	if err == mongo.ErrNoDocuments {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetRecentShifts returns a worker's shifts whose date falls inside the
// trailing window, ordered by shift date ascending.
func (m *mongoDB) GetRecentShifts(workerID string, windowDays int) ([]schema.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ShiftCollection)

	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	query := bson.M{
		"worker_id":  workerID,
		"shift_date": bson.M{"$gte": since},
	}

	cur, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"shift_date": 1}))
	if err != nil {
		return nil, err
	}

	shifts := make([]schema.Shift, 0)
	if err := cur.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}
