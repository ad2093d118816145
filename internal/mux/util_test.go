package mux

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"idlepoker-server/internal/rng"
	"idlepoker-server/pkg/game"
	"idlepoker-server/pkg/room"
	"idlepoker-server/pkg/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *room.Runner) {
	t.Helper()

	runner := room.NewRunner(game.New(rng.NewSequence(0)), store.NewMemory(), room.Options{
		TickInterval:     time.Hour,
		AutosaveInterval: time.Hour,
	})
	runner.Start()

	ts := httptest.NewServer(NewMux("v1.2.3", runner))
	t.Cleanup(func() {
		ts.Close()
		runner.Stop()
	})

	return ts, runner
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

// postView posts an action and returns the resulting view
func postView(t *testing.T, ts *httptest.Server, path string) *game.View {
	t.Helper()

	var view game.View
	assertPost(t, ts, path, &view, http.StatusOK)
	return &view
}

func Test_writeJSONError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad index"))
	a.Equal(http.StatusBadRequest, w.Code)
	a.JSONEq(`{"message":"bad index","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret"))
	a.JSONEq(`{"message":"Internal Server Error","statusCode":500}`, w.Body.String())

	w = httptest.NewRecorder()
	writeRunnerError(w, room.ErrStopped)
	a.Equal(http.StatusServiceUnavailable, w.Code)
}

func Test_pathInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(3, pathInt(map[string]string{"index": "3"}, "index"))
	a.Equal(-1, pathInt(map[string]string{}, "index"))
	a.Equal(-1, pathInt(map[string]string{"index": "99999999999999999999"}, "index"))
}
