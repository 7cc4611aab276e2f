package combo

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"levelcode/core/remote"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *mockSearcher) {
	svc, searcher := newTestService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, searcher
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleListModes(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/combo/modes", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var modes []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&modes))
	require.Len(t, modes, 3)
	assert.Equal(t, "2_of_3", modes[0]["id"])
	assert.NotContains(t, modes[0], "file")
}

func TestHandleGetMode(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/combo/modes/2_of_3", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var detail map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, float64(2), detail["min_select"])
	assert.Len(t, detail["items"], 3)

	resp, err = app.Test(httptest.NewRequest("GET", "/combo/modes/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleGenerate(t *testing.T) {
	app, searcher := setupTestApp(t)
	searcher.On("Search", mock.Anything, "30010082").Return(nil, &remote.RemoteError{Status: 200, Message: "no code found"})

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"Found", "/combo/modes/2_of_3/generate", `{"ids":["200143","200134"]}`, 200},
		{"NotFound", "/combo/modes/2_of_3/generate", `{"ids":["200134","200152"]}`, 404},
		{"BadCount", "/combo/modes/2_of_3/generate", `{"ids":["200134"]}`, 400},
		{"UnknownMode", "/combo/modes/nope/generate", `{"ids":["1"]}`, 404},
		{"BadBody", "/combo/modes/2_of_3/generate", `{"ids":`, 400},
		{"RemoteRejected", "/combo/modes/costume/generate", `{"ids":["30010082"]}`, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postJSON(t, app, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantStatus == 200 {
				assert.Equal(t, "200134 200143", body["key"])
				assert.Equal(t, "catalog", body["source"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestHandleGenerate_NotFoundMessage(t *testing.T) {
	app, _ := setupTestApp(t)

	_, body := postJSON(t, app, "/combo/modes/2_of_3/generate", `{"ids":["200134","200152"]}`)
	assert.Equal(t, "no code found for this combination", body["error"])
}
