package items

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/extract"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/middleware/auth"
	"catalog-ingest/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// An extract reconciled twice against the store creates its items once and
// then only updates what changed.
func TestExtractAgainstStore(t *testing.T) {
	app := fiber.New()
	db := setupSQLite(t)
	require.NoError(t, NewFeature(db, true, 0, zap.NewNop()).Load(app))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	defer srv.Close()

	client, err := itemapi.NewHTTPClient(itemapi.Config{BaseURL: srv.URL, MaxBatchSize: 2, MaxConcurrent: 4}, zap.NewNop())
	require.NoError(t, err)

	driver := extract.NewDriver(client, extract.Options{BatchSize: 2}, nil, zap.NewNop())
	ctx := context.Background()

	first := "familyFederatedId,optionFederatedId,title\n" +
		"F1,O1,Red chair\n" +
		"F1,O2,Blue chair\n" +
		"F2,O3,Lamp\n"
	result, err := driver.Run(ctx, "run-1", extract.NewCSVSource(strings.NewReader(first)))
	require.NoError(t, err)
	assert.Equal(t, extract.StatusCompleted, result.Status)

	repo := NewRepository(db)
	records, err := repo.All(ctx)
	require.NoError(t, err)
	byID := map[string]ItemRecord{}
	for _, r := range records {
		byID[r.FederatedID] = r
	}
	assert.Len(t, records, 5)
	assert.Equal(t, catalog.DefaultName, byID["F1"].Name)
	assert.Equal(t, []catalog.Role{catalog.RoleFamily}, byID["F2"].Roles)

	second := "familyFederatedId,optionFederatedId,title\n" +
		"F1,O1,Crimson chair\n" +
		"F1,O2,Blue chair\n"
	result, err = driver.Run(ctx, "run-2", extract.NewCSVSource(strings.NewReader(second)))
	require.NoError(t, err)
	assert.Equal(t, extract.StatusCompleted, result.Status)

	records, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 5)
	for _, r := range records {
		if r.FederatedID == "O1" {
			assert.Equal(t, "Crimson chair", r.Name)
			assert.Equal(t, byID["O1"].ID, r.ID)
		}
	}
}

// The mock store stays reachable by the item API client, which sends no key,
// while the rest of the API requires one.
func TestExtractAgainstStoreBehindAuth(t *testing.T) {
	srvCfg := server.Config{ApiKey: "secret", MockStore: true}

	app := fiber.New()
	app.Use(auth.New(auth.Config{
		ApiKey: srvCfg.ApiKey,
		Skip:   func(c *fiber.Ctx) bool { return srvCfg.IsPublicPath(c.Path()) },
	}))
	app.Get("/extract", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	require.NoError(t, NewFeature(setupSQLite(t), true, 0, zap.NewNop()).Load(app))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	defer srv.Close()

	client, err := itemapi.NewHTTPClient(itemapi.Config{BaseURL: srv.URL, MaxBatchSize: 10, MaxConcurrent: 2}, zap.NewNop())
	require.NoError(t, err)

	driver := extract.NewDriver(client, extract.Options{BatchSize: 10}, nil, zap.NewNop())
	result, err := driver.Run(context.Background(), "run-auth", extract.NewCSVSource(strings.NewReader("familyFederatedId\nF1\n")))
	require.NoError(t, err)
	assert.Equal(t, extract.StatusCompleted, result.Status)

	resp, err := http.Get(srv.URL + "/extract")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
