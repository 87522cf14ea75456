package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"shadow-sync/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, "test-bucket", "", db, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func decode(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleBucketCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	status, body := decode(t, app, "/integrity/bucket")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["exists"])
}

func TestHandleBucketCheck_Fix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	status, body := decode(t, app, "/integrity/bucket?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["created"])
}

func TestHandleBucketCheck_Error(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	status, body := decode(t, app, "/integrity/bucket")
	assert.Equal(t, 500, status)
	assert.NotEmpty(t, body["error"])
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)
	sqlMock.ExpectQuery(".*").WillReturnRows(sqlmock.NewRows([]string{"Field"}))

	status, body := decode(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, "error", body["bucket"].(map[string]any)["status"])
	assert.Equal(t, false, body["schema"].(map[string]any)["matched"])
}

func TestHandleIntegrityCheck_Skipped(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(nil, "", "", nil, zap.NewNop())).RegisterRoutes(app)

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, "skipped", body["bucket"].(map[string]any)["status"])
	assert.Equal(t, "skipped", body["schema"].(map[string]any)["status"])
}
