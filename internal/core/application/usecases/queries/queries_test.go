package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/kernel"
)

func TestNewGetBrokerSubmissionsQuery(t *testing.T) {
	query, err := queries.NewGetBrokerSubmissionsQuery("broker-1")

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, "broker-1", query.BrokerID())
}

func TestNewGetBrokerSubmissionsQueryRequiresBroker(t *testing.T) {
	_, err := queries.NewGetBrokerSubmissionsQuery("")
	assert.ErrorIs(t, err, queries.ErrBrokerIDIsRequired)
}

func TestGetBrokerSubmissionsQueryNotConstructed(t *testing.T) {
	var query queries.GetBrokerSubmissionsQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetBrokerSubmissionsQueryIsNotConstructed)
}

func TestNewGetSubmissionQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetSubmissionQuery(id)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.SubmissionID().IsEqual(id))
}

func TestNewGetSubmissionQueryInvalidID(t *testing.T) {
	_, err := queries.NewGetSubmissionQuery(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetNotificationsQuery(t *testing.T) {
	query := queries.NewGetNotificationsQuery()

	assert.NoError(t, query.Validate())
	assert.Nil(t, query.SubmissionID())
}

func TestNewGetNotificationsQueryForSubmission(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetNotificationsQueryForSubmission(id)

	require.NoError(t, err)
	require.NotNil(t, query.SubmissionID())
	assert.True(t, query.SubmissionID().IsEqual(id))
}
