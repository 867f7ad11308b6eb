package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantox/cratepack/api"
)

func testServer() *httptest.Server {
	srv := api.NewServer(api.DefaultConfig(), nil)
	return httptest.NewServer(srv)
}

func TestHandlePackSnapsSingleItemToCorner(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	body := `{
		"containers": [ { "name": null, "dims": [100,100,70], "max_weight": 500 } ],
		"objects":    [ { "id": 1, "dims": [30,30,10], "weight": 50 } ]
	}`
	resp, err := http.Post(ts.URL+"/v1/pack", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	results := decoded["results"].([]any)
	require.Len(t, results, 1)
	result := results[0].(map[string]any)
	placed := result["placed"].([]any)
	require.Len(t, placed, 1)
	placement := placed[0].(map[string]any)
	assert.Equal(t, []any{0.0, 0.0, 0.0}, placement["pos"])
	assert.Equal(t, []any{30.0, 30.0, 10.0}, placement["dims"])
}

func TestHandlePackRejectsEmptyContainers(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	body := `{"containers": [], "objects": [ { "id": 1, "dims": [1,1,1], "weight": 1 } ]}`
	resp, err := http.Post(ts.URL+"/v1/pack", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePackRejectsMalformedJSON(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/pack", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePackStreamEmitsSSEFrames(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	body := `{
		"containers": [ { "name": null, "dims": [100,100,70], "max_weight": 500 } ],
		"objects":    [ { "id": 1, "dims": [30,30,10], "weight": 50 } ]
	}`
	resp, err := http.Post(ts.URL+"/v1/pack/stream", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	stream := buf.String()
	assert.Contains(t, stream, "event: container_started")
	assert.Contains(t, stream, "event: object_placed")
	assert.Contains(t, stream, "event: container_diagnostics")
	assert.Contains(t, stream, "event: finished")
}

func TestHandleHealthz(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
