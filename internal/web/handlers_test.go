package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairdice/internal/game"
	"fairdice/internal/random"
	"fairdice/internal/session"
)

const testDice = `[[1,2,3,4,5,6],[6,5,4,3,2,1],[2,2,4,4,6,6]]`

func testServer(t *testing.T, src random.Source) (*Server, *session.MemoryStore[game.Transcript]) {
	t.Helper()
	store := session.NewMemoryStore[game.Transcript](10)
	return &Server{
		Engine: &game.Engine{Policy: game.PolicyFixed, Source: src},
		Store:  store,
		Log:    zerolog.Nop(),
	}, store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func startGame(t *testing.T, h http.Handler, body string) GameResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/games", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/games/"+resp.ID, rec.Header().Get("Location"))
	return resp
}

func TestHandleStart_UserFirst(t *testing.T) {
	srv, store := testServer(t, random.NewSequence(0, 0, 0))
	resp := startGame(t, srv.Routes(), `{"dice":`+testDice+`,"choice":1}`)

	assert.Equal(t, game.User, resp.FirstMover)
	assert.Equal(t, 1, resp.User.Die)
	assert.Equal(t, 2, resp.Computer.Die)
	assert.Equal(t, 6, resp.User.Face)
	assert.Equal(t, 2, resp.Computer.Face)
	assert.Equal(t, game.UserWins, resp.Outcome)
	assert.NoError(t, game.VerifyTranscript(resp.Transcript))
	assert.Equal(t, 1, store.Len())
}

func TestHandleStart_ComputerFirstNeedsNoChoice(t *testing.T) {
	srv, _ := testServer(t, random.NewSequence(1, 0, 0))
	resp := startGame(t, srv.Routes(), `{"dice":`+testDice+`}`)
	assert.Equal(t, game.Computer, resp.FirstMover)
	assert.Equal(t, 0, resp.Computer.Die)
	assert.Equal(t, 1, resp.User.Die)
}

func TestHandleStart_BadRequests(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"two dice":       `{"dice":[[1,2,3,4,5,6],[6,5,4,3,2,1]],"choice":0}`,
		"five faces":     `{"dice":[[1,2,3,4,5],[6,5,4,3,2,1],[1,1,1,1,1,1]],"choice":0}`,
		"negative face":  `{"dice":[[1,2,3,4,5,-6],[6,5,4,3,2,1],[1,1,1,1,1,1]],"choice":0}`,
		"choice range":   `{"dice":` + testDice + `,"choice":7}`,
		"missing choice": `{"dice":` + testDice + `}`,
	}
	for name, body := range cases {
		srv, store := testServer(t, random.NewSequence(0, 0, 0))
		rec := do(t, srv.Routes(), http.MethodPost, "/games", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s: %s", name, rec.Body.String())
		assert.Equal(t, 0, store.Len(), name)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp), name)
		assert.NotEmpty(t, errResp.Error, name)
	}
}

func TestHandleGet(t *testing.T) {
	srv, _ := testServer(t, random.NewSequence(1, 3, 4))
	h := srv.Routes()
	started := startGame(t, h, `{"dice":`+testDice+`}`)

	rec := do(t, h, http.MethodGet, "/games/"+started.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, started.ID, got.ID)
	assert.Equal(t, started.Outcome, got.Outcome)
	assert.True(t, started.User.Digest.Equal(got.User.Digest))

	rec = do(t, h, http.MethodGet, "/games/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReceipt(t *testing.T) {
	srv, _ := testServer(t, random.NewSequence(1, 3, 4))
	h := srv.Routes()
	started := startGame(t, h, `{"dice":`+testDice+`}`)

	rec := do(t, h, http.MethodGet, "/games/"+started.ID+"/receipt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = do(t, h, http.MethodGet, "/games/nope/receipt", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleVerify(t *testing.T) {
	srv, _ := testServer(t, random.NewSequence(0, 2, 3))
	h := srv.Routes()
	started := startGame(t, h, `{"dice":`+testDice+`,"choice":0}`)

	body, err := json.Marshal(started)
	require.NoError(t, err)
	rec := do(t, h, http.MethodPost, "/verify", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	var ok VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	assert.True(t, ok.Verified, ok.Error)

	forged := started.Transcript
	forged.Computer.Face = 99
	body, err = json.Marshal(forged)
	require.NoError(t, err)
	rec = do(t, h, http.MethodPost, "/verify", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	var bad VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bad))
	assert.False(t, bad.Verified)
	assert.Contains(t, bad.Error, "computer")

	rec = do(t, h, http.MethodPost, "/verify", `{"dice":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t, random.NewSequence())
	rec := do(t, srv.Routes(), http.MethodGet, "/games", "")
	assert.NotEqual(t, http.StatusOK, rec.Code)
	rec = do(t, srv.Routes(), http.MethodDelete, "/games/abc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
