package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safeshift-health/safeshift-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrAlertNotFound = errors.New("alert not found")
)

// MongoStore - interface for mongodb operations backing the risk
// pipeline: shift history and burnout alerts.
type MongoStore interface {
	History
	ShiftStore
	AlertStore
	Closer
	Pinger
}

// History supplies a worker's ordered, scored shift records over a
// trailing date window. It is the read side the pattern detector and
// forecaster consume.
type History interface {
	GetRecentShifts(workerID string, windowDays int) ([]schema.Shift, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
