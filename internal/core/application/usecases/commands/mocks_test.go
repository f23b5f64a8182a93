package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

type MockSubmissionRepository struct{ mock.Mock }

func (m *MockSubmissionRepository) Add(ctx context.Context, aggregate *bol.Submission) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, aggregate *bol.Submission) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Get(_ context.Context, _ kernel.UUID) (*bol.Submission, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockSubmissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*bol.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bol.Submission), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(_ context.Context, _ kernel.UUID) (*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockNotificationRepository) GetAllFailed(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SubmissionRepository() ports.SubmissionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubmissionRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, aggregate *notification.Notification) {
	m.Called(ctx, aggregate)
}

type MockSequenceProvider struct{ mock.Mock }

func (m *MockSequenceProvider) Next(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
