package reported

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"shadow-sync/core/reconcile"
	"shadow-sync/core/shadow"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *shadow.MemoryStore) {
	t.Helper()
	app := fiber.New()
	store := shadow.NewMemoryStore()
	feature := NewFeature(store, reconcile.DefaultConfig(), zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, store
}

func put(t *testing.T, app *fiber.App, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("PUT", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleUpdateReported(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := put(t, app, "/shadows/dev-1/reported", `{"msgData":{"rptdVrs":2,"dsrdVrs":2,"opsCfg":{"tzOfst":-5}}}`)
	assert.Equal(t, fiber.StatusOK, status)

	state := body["state"].(map[string]any)
	reported := state["reported"].(map[string]any)
	assert.Equal(t, 2.0, reported["rptdVrs"])
	assert.NotContains(t, reported, "dsrdVrs")
	assert.Equal(t, -300.0, reported["opsCfg"].(map[string]any)["tzOfst"])
	assert.Equal(t, 2.0, state["desired"].(map[string]any)["rptdVrs"])
}

func TestHandleUpdateReported_Noop(t *testing.T) {
	app, store := setupTestApp(t)

	status, body := put(t, app, "/shadows/dev-1/reported", `{"msgTyp":201}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MessageNormalOperation, body["message"])
	assert.Zero(t, store.Len())
}

func TestHandleUpdateReported_Reset(t *testing.T) {
	app, store := setupTestApp(t)
	require.NoError(t, store.Seed("dev-1", nil, map[string]any{"sysCfg": map[string]any{"fw": "1"}}))

	status, body := put(t, app, "/shadows/dev-1/reported", `{"rptdVrs":0,"msgData":{}}`)
	assert.Equal(t, fiber.StatusOK, status)
	state := body["state"].(map[string]any)
	assert.NotContains(t, state, "reported")
}

func TestHandleUpdateReported_InvalidPosition(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := put(t, app, "/shadows/dev-1/reported", `{"msgData":{"rptdVrs":1,"rcrEvntsCfg":[{"pos":1000}]}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.True(t, strings.HasPrefix(body["error"].(string), "[ValidationError] - "))
}

func TestHandleUpdateReported_DryRun(t *testing.T) {
	app, store := setupTestApp(t)

	status, body := put(t, app, "/shadows/dev-1/reported?dry_run=true", `{"msgData":{"rptdVrs":4}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "write", body["outcome"])
	assert.Equal(t, 4.0, body["reportedVersion"])
	assert.Zero(t, store.Len())
}

func TestLoader(t *testing.T) {
	feature := NewFeature(shadow.NewMemoryStore(), reconcile.Config{}, zap.NewNop())
	assert.Equal(t, "reported", feature.Name())
	assert.True(t, feature.IsEnabled())
}
