package submissionrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightflow/internal/adapters/out/postgres/submissionrepo"
	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// SubmissionRepositoryIntegrationTestSuite provides integration tests for
// GormSubmissionRepository using PostgreSQL containers to verify database
// persistence behavior.
type SubmissionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *submissionrepo.GormSubmissionRepository
	tracker    *MockAggregateTracker
}

func (suite *SubmissionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&submissionrepo.SubmissionDTO{}))
}

func (suite *SubmissionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bol_submissions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = submissionrepo.NewGormSubmissionRepository(suite.db, suite.tracker)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestAdd_ValidSubmission_Success() {
	ctx := context.Background()

	submission := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", submission.ID(), submission).Once()

	err := suite.repository.Add(ctx, submission)
	suite.Require().NoError(err)

	suite.assertSubmissionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestGet_ExistingSubmission_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.Equal(original.LoadID(), retrieved.LoadID())
	suite.Equal(original.LoadIdentifierID(), retrieved.LoadIdentifierID())
	suite.Equal(original.DriverID(), retrieved.DriverID())
	suite.Equal(original.BrokerID(), retrieved.BrokerID())
	suite.Equal(original.ShipperEmail(), retrieved.ShipperEmail())
	suite.Equal(bol.BrokerReview, retrieved.Status())
	suite.Nil(retrieved.Invoice())
	suite.Nil(retrieved.ApprovedAt())
	suite.Nil(retrieved.RejectedAt())

	suite.Equal(original.BOLData().BOLNumber, retrieved.BOLData().BOLNumber)
	suite.Equal(original.BOLData().PickupPhotos, retrieved.BOLData().PickupPhotos)
	suite.Equal(original.BOLData().SealNumbers, retrieved.BOLData().SealNumbers)
	suite.Equal(original.BOLData().Pieces, retrieved.BOLData().Pieces)

	suite.WithinDuration(original.SubmittedAt(), retrieved.SubmittedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestGet_NonExistentSubmission_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_ApprovedSubmissionWithInvoice_RoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC()

	submission := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", submission.ID(), submission).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, submission))

	// Drive the full approval lifecycle
	suite.Require().NoError(submission.Approve(submission.BrokerID(), "looks good", now))

	rate := 1950.0
	invoice, err := bol.NewInvoice(
		"INV-JD-25005-ATLMIA-WMT-DVFM-001-483920",
		1800,
		bol.Adjustments{
			Rate:              &rate,
			AdditionalCharges: []bol.Charge{{Description: "detention", Amount: 150}},
			Deductions:        []bol.Charge{{Description: "late fee", Amount: 50}},
		},
		2050,
		now.AddDate(0, 0, 30),
		now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(submission.AttachInvoice(invoice, now))
	suite.Require().NoError(submission.MarkInvoiceSent(now))
	suite.Require().NoError(submission.Complete(now))

	suite.Require().NoError(suite.repository.Update(ctx, submission))

	retrieved, err := suite.repository.Get(ctx, submission.ID())
	suite.Require().NoError(err)

	suite.Equal(bol.Completed, retrieved.Status())
	suite.Equal("looks good", retrieved.ReviewNotes())
	suite.NotNil(retrieved.ApprovedAt())
	suite.NotNil(retrieved.InvoiceSentAt())
	suite.NotNil(retrieved.CompletedAt())

	suite.Require().NotNil(retrieved.Invoice())
	suite.Equal(invoice.ID(), retrieved.Invoice().ID())
	suite.InDelta(invoice.BaseRate(), retrieved.Invoice().BaseRate(), 0.001)
	suite.InDelta(invoice.Total(), retrieved.Invoice().Total(), 0.001)
	suite.Require().NotNil(retrieved.Invoice().Adjustments().Rate)
	suite.InDelta(rate, *retrieved.Invoice().Adjustments().Rate, 0.001)
	suite.Len(retrieved.Invoice().Adjustments().AdditionalCharges, 1)
	suite.Len(retrieved.Invoice().Adjustments().Deductions, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_RejectedSubmission_PersistsTerminalState() {
	ctx := context.Background()
	now := time.Now().UTC()

	submission := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", submission.ID(), submission).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, submission))

	suite.Require().NoError(submission.Reject(submission.BrokerID(), "missing receiver signature", now))
	suite.Require().NoError(suite.repository.Update(ctx, submission))

	retrieved, err := suite.repository.Get(ctx, submission.ID())
	suite.Require().NoError(err)

	suite.Equal(bol.Rejected, retrieved.Status())
	suite.Equal("missing receiver signature", retrieved.ReviewNotes())
	suite.NotNil(retrieved.RejectedAt())
	suite.Nil(retrieved.Invoice())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_NonExistentSubmission_ReturnsError() {
	ctx := context.Background()

	submission := suite.createTestSubmission()

	err := suite.repository.Update(ctx, submission)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction_ReturnsSubmission() {
	ctx := context.Background()

	submission := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", submission.ID(), submission).Once()
	suite.Require().NoError(suite.repository.Add(ctx, submission))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepository := submissionrepo.NewGormSubmissionRepository(tx, suite.tracker)

	retrieved, err := txRepository.GetForUpdate(ctx, submission.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(submission.ID()))
	suite.Equal(bol.BrokerReview, retrieved.Status())

	suite.Require().NoError(tx.Commit().Error)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestSubmission creates a submission with realistic paperwork.
func (suite *SubmissionRepositoryIntegrationTestSuite) createTestSubmission() *bol.Submission {
	submission, err := bol.NewSubmission(
		kernel.NewUUID(),
		"load-42", "JD-25005-ATLMIA-WMT-DVFM-001",
		"driver-1", "Mike Johnson",
		"broker-1", "John Doe",
		"shipper-1", "Walmart DC", "ap@walmart.example",
		bol.BOLData{
			BOLNumber:         "BOL-JD-25005-ATLMIA-WMT-DVFM-001",
			PRONumber:         "PRO-2500112345",
			DeliveryDate:      "2025-01-05",
			DeliveryTime:      "14:30",
			ReceiverName:      "Dock B",
			DriverSignature:   "sig-data-driver",
			ReceiverSignature: "sig-data-receiver",
			PickupPhotos:      []string{"pickup-1.jpg"},
			DeliveryPhotos:    []string{"delivery-1.jpg", "delivery-2.jpg"},
			SealNumbers:       []string{"SEAL-881"},
			Weight:            "42000",
			Pieces:            26,
			Damages:           []string{},
			Notes:             "delivered on time",
		},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return submission
}

// assertSubmissionCount verifies the number of submissions in the database.
func (suite *SubmissionRepositoryIntegrationTestSuite) assertSubmissionCount(expected int) {
	var count int64
	err := suite.db.Model(&submissionrepo.SubmissionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestSubmissionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositoryIntegrationTestSuite))
}
