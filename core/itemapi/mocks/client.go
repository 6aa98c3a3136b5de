package mocks

import (
	"context"

	"catalog-ingest/core/catalog"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of itemapi.Client
type Client struct {
	mock.Mock
}

func (m *Client) LookupByIDs(ctx context.Context, ids []string) (map[string]catalog.StoredItem, error) {
	args := m.Called(ctx, ids)
	if found, ok := args.Get(0).(map[string]catalog.StoredItem); ok {
		return found, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateBatch(ctx context.Context, items []catalog.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *Client) UpdateBatch(ctx context.Context, items []catalog.StoredItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
