package commands_test

import (
	"context"

	"keygen/internal/core/application/usecases/commands"
	"keygen/internal/core/domain/model/secret"
	"keygen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the command handler tests.
type MockSecretRepository struct {
	mock.Mock
}

func (m *MockSecretRepository) Add(ctx context.Context, s *secret.Secret) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSecretRepository) GetAll(ctx context.Context) ([]*secret.Secret, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*secret.Secret), args.Error(1)
}

func (m *MockSecretRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSecretUoW struct {
	mock.Mock
}

func (m *MockSecretUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSecretUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSecretUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSecretUoW) SecretRepository() ports.SecretRepository {
	args := m.Called()
	return args.Get(0).(ports.SecretRepository)
}

type MockSecretUoWFactory struct {
	mock.Mock
}

func (m *MockSecretUoWFactory) Create() commands.SecretUoW {
	args := m.Called()
	return args.Get(0).(commands.SecretUoW)
}
