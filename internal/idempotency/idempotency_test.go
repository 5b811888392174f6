package idempotency

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "idem.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveKeepsFirstRecord(t *testing.T) {
	s := newTestStore(t)

	first, written, err := s.Save(&Record{Key: "k", Fingerprint: "a", Status: 201, Body: []byte("one")})
	require.NoError(t, err)
	assert.True(t, written)
	assert.False(t, first.CreatedAt.IsZero())

	second, written, err := s.Save(&Record{Key: "k", Fingerprint: "b", Status: 400, Body: []byte("two")})
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, "a", second.Fingerprint)
	assert.Equal(t, []byte("one"), second.Body)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPruneRemovesOldRecords(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	_, _, err := s.Save(&Record{Key: "old", Status: 200, CreatedAt: now.Add(-48 * time.Hour)})
	require.NoError(t, err)
	_, _, err = s.Save(&Record{Key: "new", Status: 200, CreatedAt: now})
	require.NoError(t, err)

	n, err := s.Prune(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get("old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("new")
	assert.NoError(t, err)
}

func countingHandler(calls *int32, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(calls, 1)
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"call":%d,"echo":%q}`, n, body)
	})
}

func post(h http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	if key != "" {
		req.Header.Set(HeaderKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareReplaysFirstResponse(t *testing.T) {
	var calls int32
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Middleware(newTestStore(t), quiet)(countingHandler(&calls, http.StatusCreated))

	first := post(h, "abc", "x")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(HeaderReplayed))

	second := post(h, "abc", "x")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(HeaderReplayed))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	conflict := post(h, "abc", "y")
	assert.Equal(t, http.StatusUnprocessableEntity, conflict.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	post(h, "", "x")
	post(h, "", "x")
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls), "requests without a key are never replayed")
}

func TestMiddlewareDoesNotStoreServerErrors(t *testing.T) {
	var calls int32
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Middleware(newTestStore(t), quiet)(countingHandler(&calls, http.StatusInternalServerError))

	post(h, "retry-me", "x")
	rec := post(h, "retry-me", "x")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderReplayed))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestMiddlewareRejectsLongKeys(t *testing.T) {
	var calls int32
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Middleware(newTestStore(t), quiet)(countingHandler(&calls, http.StatusCreated))

	rec := post(h, strings.Repeat("k", maxKeyLen+1), "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, atomic.LoadInt32(&calls))
}
