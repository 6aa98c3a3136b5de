package items

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/itemapi"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, NewFeature(setupSQLite(t), true, 0, zap.NewNop()).Load(app))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestRepository_FindByFederatedIDs(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "federated_id", "name", "description", "roles"}).
		AddRow("u1", "F1", "Chair", "", []byte(`["FAMILY"]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `items` WHERE federated_id IN (?,?)")).
		WithArgs("F1", "F2").
		WillReturnRows(rows)

	records, err := NewRepository(db).FindByFederatedIDs(context.Background(), []string{"F1", "F2"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].ID)
	assert.Equal(t, []catalog.Role{catalog.RoleFamily}, records[0].Roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler(t *testing.T) {
	t.Run("Create Then Lookup", func(t *testing.T) {
		app := newTestApp(t)

		status, body := doJSON(t, app, "POST", itemapi.PathBatch, itemapi.CreateRequest{Items: []catalog.Item{
			{Name: "Chair", FederatedID: "F1", Roles: []catalog.Role{catalog.RoleFamily}},
			{Name: "Red chair", FederatedID: "O1", Roles: []catalog.Role{catalog.RoleOption}},
		}})
		require.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, string(body))

		status, body = doJSON(t, app, "GET", itemapi.PathLookup+"?federatedIds=O1,missing", nil)
		require.Equal(t, fiber.StatusOK, status)

		var resp itemapi.ItemsResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "O1", resp.Items[0].FederatedID)
		assert.Equal(t, "Red chair", resp.Items[0].Name)
		assert.NotEmpty(t, resp.Items[0].ID)
	})

	t.Run("Update Overwrites By ID", func(t *testing.T) {
		app := newTestApp(t)
		doJSON(t, app, "POST", itemapi.PathBatch, itemapi.CreateRequest{Items: []catalog.Item{{Name: "Old", FederatedID: "O1"}}})

		_, body := doJSON(t, app, "GET", "/items/all", nil)
		var all itemapi.ItemsResponse
		require.NoError(t, json.Unmarshal(body, &all))
		require.Len(t, all.Items, 1)

		updated := all.Items[0]
		updated.Name = "New"
		status, _ := doJSON(t, app, "PUT", itemapi.PathBatch, itemapi.UpdateRequest{Items: []catalog.StoredItem{updated}})
		require.Equal(t, fiber.StatusOK, status)

		_, body = doJSON(t, app, "GET", "/items/all", nil)
		require.NoError(t, json.Unmarshal(body, &all))
		require.Len(t, all.Items, 1)
		assert.Equal(t, "New", all.Items[0].Name)
		assert.Equal(t, updated.ID, all.Items[0].ID)
	})

	t.Run("Update Without ID", func(t *testing.T) {
		app := newTestApp(t)
		status, body := doJSON(t, app, "PUT", itemapi.PathBatch, itemapi.UpdateRequest{Items: []catalog.StoredItem{
			{Item: catalog.Item{FederatedID: "O1"}},
		}})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "item has no id")
	})

	t.Run("Lookup Requires IDs", func(t *testing.T) {
		status, _ := doJSON(t, newTestApp(t), "GET", itemapi.PathLookup, nil)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", itemapi.PathBatch, strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := newTestApp(t).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestFeature(t *testing.T) {
	f := NewFeature(nil, false, 0, zap.NewNop())
	assert.Equal(t, "items", f.Name())
	assert.False(t, f.IsEnabled())
	assert.ErrorIs(t, f.Load(fiber.New()), ErrNoDatabase)
}
