package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/blogway/internal/userservice"
)

func strptr(s string) *string {
	return &s
}

// newBareApplication builds an application without a database for
// middleware tests that never reach storage.
func newBareApplication() *application {
	return &application{
		config:      &Config{Environment: "test", LimiterEnabled: false},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(nil, discardProducer{}, []byte("test-secret-key")),
		metrics:     newMetricsWithRegistry(prometheus.NewRegistry()),
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newBareApplication()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app := newBareApplication()

	tests := []struct {
		name           string
		authHeader     *string
		expectedStatus int
		expectedUserID int
	}{
		{
			name:           "no authorization header",
			authHeader:     nil,
			expectedStatus: http.StatusOK,
			expectedUserID: 0,
		},
		{
			name:           "invalid token",
			authHeader:     strptr("Bearer not-a-real-token"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed header passes through as anonymous",
			authHeader:     strptr("Basic dXNlcjpwYXNz"),
			expectedStatus: http.StatusOK,
			expectedUserID: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = app.getUserContext(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != nil {
				req.Header.Set("Authorization", *tt.authHeader)
			}
			res := httptest.NewRecorder()

			app.authenticate(handler).ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, gotUserID)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	app := newBareApplication()

	handler := app.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
		assert.Contains(t, res.Body.String(), "You are not authorized")
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = app.createUserContext(req, 42)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestRateLimit(t *testing.T) {
	app := newBareApplication()
	app.config.LimiterEnabled = true
	app.config.LimiterRPS = 2
	app.config.LimiterBurst = 2

	handler := app.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)
		codes = append(codes, res.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
