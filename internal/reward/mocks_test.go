package reward

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedger) CreditTokens(ctx context.Context, userID string, amount int, meta domain.TransactionMeta) (*domain.TokenTransfer, error) {
	args := m.Called(ctx, userID, amount, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenTransfer), args.Error(1)
}

func (m *MockLedger) RecordCompletion(ctx context.Context, userID string, entry domain.CompletionEntry) error {
	args := m.Called(ctx, userID, entry)
	return args.Error(0)
}

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) ResolveItem(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockInventory) GrantItem(ctx context.Context, userID, characterName string, item domain.Item, quantity int) error {
	args := m.Called(ctx, userID, characterName, item, quantity)
	return args.Error(0)
}
