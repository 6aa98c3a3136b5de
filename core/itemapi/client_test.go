package itemapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/itemapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingServer serves the item API protocol and records request bodies.
type recordingServer struct {
	mu      sync.Mutex
	stored  map[string]catalog.StoredItem
	lookups [][]string
	posts   [][]catalog.Item
	puts    [][]catalog.StoredItem
	status  int
}

func (s *recordingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != 0 {
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == itemapi.PathLookup:
		ids := strings.Split(r.URL.Query().Get("federatedIds"), ",")
		s.lookups = append(s.lookups, ids)
		resp := itemapi.ItemsResponse{Items: []catalog.StoredItem{}}
		for _, id := range ids {
			if item, ok := s.stored[id]; ok {
				resp.Items = append(resp.Items, item)
			}
		}
		_ = json.NewEncoder(w).Encode(resp)
	case r.Method == http.MethodPost && r.URL.Path == itemapi.PathBatch:
		var req itemapi.CreateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.posts = append(s.posts, req.Items)
		_, _ = w.Write([]byte(`{"success":true}`))
	case r.Method == http.MethodPut && r.URL.Path == itemapi.PathBatch:
		var req itemapi.UpdateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.puts = append(s.puts, req.Items)
		_, _ = w.Write([]byte(`{"success":true}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, srv *recordingServer, batchSize int) *itemapi.HTTPClient {
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client, err := itemapi.NewHTTPClient(itemapi.Config{
		BaseURL:       ts.URL,
		MaxBatchSize:  batchSize,
		MaxConcurrent: 4,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewHTTPClient_InvalidBaseURL(t *testing.T) {
	_, err := itemapi.NewHTTPClient(itemapi.Config{BaseURL: "not a url"}, zap.NewNop())
	assert.ErrorIs(t, err, itemapi.ErrInvalidBaseURL)
}

func TestLookupByIDs(t *testing.T) {
	srv := &recordingServer{
		stored: map[string]catalog.StoredItem{
			"F1": {ID: "id-1", Item: catalog.Item{Name: "Family", FederatedID: "F1", Roles: []catalog.Role{catalog.RoleFamily}}},
		},
	}
	client := newTestClient(t, srv, 2)

	found, err := client.LookupByIDs(context.Background(), []string{"F1", "O1", "O2"})
	require.NoError(t, err)

	assert.Len(t, found, 1)
	assert.Equal(t, "id-1", found["F1"].ID)
	assert.Equal(t, []catalog.Role{catalog.RoleFamily}, found["F1"].Roles)
	assert.Len(t, srv.lookups, 2, "three ids with batch size 2 need two requests")
}

func TestLookupByIDs_Empty(t *testing.T) {
	srv := &recordingServer{}
	client := newTestClient(t, srv, 10)

	found, err := client.LookupByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Empty(t, srv.lookups)
}

func TestCreateBatch_Chunks(t *testing.T) {
	srv := &recordingServer{}
	client := newTestClient(t, srv, 2)

	items := []catalog.Item{
		{FederatedID: "1", Roles: []catalog.Role{catalog.RoleOption}},
		{FederatedID: "2", Roles: []catalog.Role{catalog.RoleOption}},
		{FederatedID: "3", Roles: []catalog.Role{catalog.RoleOption}},
		{FederatedID: "4", Roles: []catalog.Role{catalog.RoleOption}},
		{FederatedID: "5", Roles: []catalog.Role{catalog.RoleOption}},
	}

	err := client.CreateBatch(context.Background(), items)
	require.NoError(t, err)

	require.Len(t, srv.posts, 3)
	total := 0
	for _, chunk := range srv.posts {
		assert.LessOrEqual(t, len(chunk), 2)
		total += len(chunk)
	}
	assert.Equal(t, 5, total)
}

func TestUpdateBatch_SendsStoreID(t *testing.T) {
	srv := &recordingServer{}
	client := newTestClient(t, srv, 10)

	err := client.UpdateBatch(context.Background(), []catalog.StoredItem{
		{ID: "id-7", Item: catalog.Item{Name: "New", FederatedID: "O7", Roles: []catalog.Role{catalog.RoleOption}, Family: "F1"}},
	})
	require.NoError(t, err)

	require.Len(t, srv.puts, 1)
	require.Len(t, srv.puts[0], 1)
	assert.Equal(t, "id-7", srv.puts[0][0].ID)
	assert.Equal(t, "New", srv.puts[0][0].Name)
	assert.Empty(t, srv.puts[0][0].Family, "family reference is not sent")
}

func TestAPIError(t *testing.T) {
	srv := &recordingServer{status: http.StatusBadGateway}
	client := newTestClient(t, srv, 10)

	err := client.CreateBatch(context.Background(), []catalog.Item{{FederatedID: "1"}})
	require.Error(t, err)

	var apiErr *itemapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.MethodPost, apiErr.Method)
}
