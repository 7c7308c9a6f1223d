package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safeshift-health/safeshift-api/schema"
)

type ShiftTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewShiftTestSuite(connURI, dbName string) *ShiftTestSuite {
	return &ShiftTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ShiftTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
}

// CleanMongoDB drop the whole test mongodb
func (s *ShiftTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ShiftTestSuite) testShift(workerID string, daysAgo int) schema.Shift {
	return schema.Shift{
		WorkerID: workerID,
		Attributes: schema.ShiftAttributes{
			ShiftDate:     time.Now().UTC().AddDate(0, 0, -daysAgo),
			HoursSlept:    6,
			ShiftType:     schema.NightShift,
			ShiftHours:    10,
			PatientsCount: 8,
			StressLevel:   5,
		},
		Index: 45,
		Zone:  schema.ZoneYellow,
	}
}

func (s *ShiftTestSuite) TestCreateAndGetShift() {
	shift := s.testShift("worker-crud", 0)

	s.NoError(s.store.CreateShift(&shift))
	s.NotEmpty(shift.ID)
	s.False(shift.CreatedAt.IsZero())

	got, err := s.store.GetShift("worker-crud", shift.ID)
	s.NoError(err)
	s.Equal(shift.ID, got.ID)
	s.Equal(45, got.Index)
	s.Equal(schema.ZoneYellow, got.Zone)
	s.Equal(float64(6), got.Attributes.HoursSlept)
}

func (s *ShiftTestSuite) TestGetShiftWrongWorker() {
	shift := s.testShift("worker-owner", 0)
	s.NoError(s.store.CreateShift(&shift))

	_, err := s.store.GetShift("another-worker", shift.ID)
	s.Equal(ErrShiftNotFound, err, "a shift is only visible to its owner")
}

func (s *ShiftTestSuite) TestUpdateShift() {
	shift := s.testShift("worker-update", 0)
	s.NoError(s.store.CreateShift(&shift))

	shift.Attributes.Note = "short staffed"
	s.NoError(s.store.UpdateShift(&shift))

	got, err := s.store.GetShift("worker-update", shift.ID)
	s.NoError(err)
	s.Equal("short staffed", got.Attributes.Note)

	missing := s.testShift("worker-update", 0)
	missing.ID = "no-such-shift"
	s.Equal(ErrShiftNotFound, s.store.UpdateShift(&missing))
}

func (s *ShiftTestSuite) TestGetRecentShiftsWindow() {
	for _, daysAgo := range []int{0, 3, 10, 20} {
		shift := s.testShift("worker-window", daysAgo)
		s.NoError(s.store.CreateShift(&shift))
	}

	shifts, err := s.store.GetRecentShifts("worker-window", schema.PatternWindowDays)
	s.NoError(err)
	s.Len(shifts, 3, "the 20-day-old shift falls outside the window")

	for i := 1; i < len(shifts); i++ {
		s.False(shifts[i].Attributes.ShiftDate.Before(shifts[i-1].Attributes.ShiftDate),
			"shifts must come back in date ascending order")
	}
}

func TestShiftTestSuite(t *testing.T) {
	connURI := os.Getenv("SAFESHIFT_TEST_MONGO")
	if connURI == "" {
		t.Skip("SAFESHIFT_TEST_MONGO not set")
	}
	suite.Run(t, NewShiftTestSuite(connURI, "test-db"))
}
