package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/goods-search/pkg/ctxutil"
)

// serveLogged runs one request through Logger and returns the decoded record.
func serveLogged(t *testing.T, req *http.Request, handler http.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), "log output: %s", buf.String())
	return record
}

func TestLogger_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/search?q=rele", nil)
	record := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	assert.Equal(t, "http.request", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, "/api/v1/products/search", record["path"])
	assert.EqualValues(t, 200, record["status"])
	assert.EqualValues(t, 5, record["bytes"])
	assert.Contains(t, record, "duration")
	assert.NotContains(t, record, "user_id")
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusNoContent, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			record := serveLogged(t, req, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			assert.Equal(t, tt.level, record["level"])
			assert.EqualValues(t, tt.status, record["status"])
		})
	}
}

func TestLogger_IncludesIdentifiers(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "test-request-id-123")
	ctx = ctxutil.WithUserID(ctx, userID)

	record := serveLogged(t, req.WithContext(ctx), func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, "test-request-id-123", record["request_id"])
	assert.Equal(t, userID.String(), record["user_id"])
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}
	sw.WriteHeader(http.StatusAccepted)
	sw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusAccepted, sw.status)
	assert.Equal(t, rec, sw.Unwrap())
}
