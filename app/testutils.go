package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sushihentaime/blogway/internal/blogservice"
	"github.com/sushihentaime/blogway/internal/common"
	"github.com/sushihentaime/blogway/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

// discardProducer swallows published events so the tests do not need a
// running message broker.
type discardProducer struct{}

func (discardProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	return nil
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	cfg := &Config{
		Environment:    "test",
		Version:        "1.0.0",
		JWTSecret:      "test-secret-key",
		LimiterEnabled: false,
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, discardProducer{}, []byte(cfg.JWTSecret)),
		blogService: blogservice.NewBlogService(db, cache),
		metrics:     newMetricsWithRegistry(prometheus.NewRegistry()),
	}

	return app, db
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if len(responseBody) > 0 {
		err = json.Unmarshal(responseBody, &env)
		if err != nil {
			t.Fatal(err)
		}
	}

	return res.StatusCode, res.Header, env
}

func (ts *testServer) request(t *testing.T, method, path string, payload any, token *string) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodGet, path, nil, token)
}

func (ts *testServer) patch(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodPatch, path, payload, token)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.request(t, http.MethodDelete, path, nil, token)
}
