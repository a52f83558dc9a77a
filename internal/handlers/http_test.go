package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/smartbizlabs/assistgen/internal/model"
)

type fakeStore struct {
	collections []string
	bodies      []any
	readyErr    error
	createErr   error
	listed      []string
}

func (s *fakeStore) CreateDocument(_ context.Context, collection string, body any) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.collections = append(s.collections, collection)
	s.bodies = append(s.bodies, body)
	return "doc-1", nil
}

func (s *fakeStore) ListCollectionNames(context.Context) ([]string, error) {
	return s.listed, nil
}

func (s *fakeStore) Ready(context.Context) error {
	return s.readyErr
}

type fakeEvents struct {
	published int
}

func (e *fakeEvents) GenerationCompleted(context.Context, string, string, time.Time) {
	e.published++
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validBody() string {
	return `{
		"business_name": "Glow Clinic",
		"industry": "beauty salon",
		"services": ["facials", "waxing"],
		"location": "Leeds",
		"target_audience": "busy professionals",
		"subscription_tier": "Premium"
	}`
}

func TestGenerate_OK(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{}
	h := New(store, events, testLogger())
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(validBody()))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rw.Code, rw.Body.String())
	}

	var result model.GenerationResult
	if err := json.NewDecoder(rw.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.SubscriptionTier != "premium" {
		t.Fatalf("tier = %q, want premium (normalized)", result.SubscriptionTier)
	}
	if result.CallerBot == nil || !result.CallerBot.ProvisionNumber {
		t.Fatalf("premium caller bot = %+v", result.CallerBot)
	}
	if len(result.Dashboard.Roles) != 9 {
		t.Fatalf("premium dashboard roles = %d", len(result.Dashboard.Roles))
	}

	wantCollections := []string{"businessinput", "generationresult"}
	if len(store.collections) != 2 || store.collections[0] != wantCollections[0] || store.collections[1] != wantCollections[1] {
		t.Fatalf("archived collections = %v, want %v", store.collections, wantCollections)
	}
	archived, ok := store.bodies[0].(model.BusinessInput)
	if !ok {
		t.Fatalf("archived input has type %T", store.bodies[0])
	}
	if archived.Tone != "professional" {
		t.Fatalf("archived tone = %q, want the default applied", archived.Tone)
	}
	if len(archived.BrandColors) != 2 {
		t.Fatalf("archived brand colors = %v, want the default palette", archived.BrandColors)
	}
	if events.published != 1 {
		t.Fatalf("events published = %d, want 1", events.published)
	}
}

func TestGenerate_BogusTier(t *testing.T) {
	store := &fakeStore{}
	h := New(store, nil, testLogger())

	body := strings.Replace(validBody(), "Premium", "bogus", 1)
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	if !strings.Contains(rw.Body.String(), tierErrorMessage) {
		t.Fatalf("body = %q, want the fixed tier message", rw.Body.String())
	}
	if len(store.collections) != 0 {
		t.Fatalf("no archival should happen on rejection, got %v", store.collections)
	}
}

func TestGenerate_EmptyServices(t *testing.T) {
	h := New(nil, nil, testLogger())

	body := strings.Replace(validBody(), `["facials", "waxing"]`, `[]`, 1)
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rw.Code, rw.Body.String())
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	h := New(nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{not json"))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
}

func TestGenerate_StoreFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{createErr: errors.New("store down")}
	h := New(store, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(validBody()))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("archival failure must not fail the request, got %d", rw.Code)
	}
}

func TestGenerate_NoStore(t *testing.T) {
	h := New(nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(validBody()))
	rw := httptest.NewRecorder()
	h.Generate(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("missing store must not fail the request, got %d", rw.Code)
	}
}

func TestRoot(t *testing.T) {
	h := New(nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rw := httptest.NewRecorder()
	h.Root(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	if !strings.Contains(rw.Body.String(), "AI Business Assistant Generator Backend") {
		t.Fatalf("body = %q", rw.Body.String())
	}

	reqOther := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rwOther := httptest.NewRecorder()
	h.Root(rwOther, reqOther)
	if rwOther.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unrouted path, got %d", rwOther.Code)
	}
}

func TestDiagnostics_NoStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	h := New(nil, nil, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rw := httptest.NewRecorder()
	h.Diagnostics(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("diagnostics must always return 200, got %d", rw.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rw.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["backend"] != "running" {
		t.Fatalf("backend = %v", resp["backend"])
	}
	if resp["database"] != "not configured" {
		t.Fatalf("database = %v", resp["database"])
	}
	if resp["database_url"] != "not set" || resp["database_name"] != "not set" {
		t.Fatalf("env status = %v / %v", resp["database_url"], resp["database_name"])
	}
}

func TestDiagnostics_WithStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("DATABASE_NAME", "archive")

	listed := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		listed = append(listed, "col")
	}
	store := &fakeStore{listed: listed}

	h := New(store, nil, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rw := httptest.NewRecorder()
	h.Diagnostics(rw, req)

	var resp diagnosticsResponse
	if err := json.NewDecoder(rw.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Database != "connected" || resp.ConnectionStatus != "connected" {
		t.Fatalf("store status = %q / %q", resp.Database, resp.ConnectionStatus)
	}
	if len(resp.Collections) != 10 {
		t.Fatalf("collections should cap at 10, got %d", len(resp.Collections))
	}
	if resp.DatabaseURL != "set" || resp.DatabaseName != "set" {
		t.Fatalf("env status = %q / %q", resp.DatabaseURL, resp.DatabaseName)
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	in := strings.Repeat("é", 60)
	out := truncate(in, 50)
	if !utf8.ValidString(out) {
		t.Fatalf("truncate produced invalid UTF-8: %q", out)
	}
	if got := utf8.RuneCountInString(out); got != 50 {
		t.Fatalf("truncated to %d runes, want 50", got)
	}
	if short := truncate("ok", 50); short != "ok" {
		t.Fatalf("short string altered: %q", short)
	}
}

func TestDiagnostics_StoreDown(t *testing.T) {
	store := &fakeStore{readyErr: errors.New("dial tcp: connection refused to a very long unreachable address")}

	h := New(store, nil, testLogger())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rw := httptest.NewRecorder()
	h.Diagnostics(rw, req)

	if rw.Code != http.StatusOK {
		t.Fatalf("diagnostics must always return 200, got %d", rw.Code)
	}

	var resp diagnosticsResponse
	if err := json.NewDecoder(rw.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Database, "connection error: ") {
		t.Fatalf("database = %q", resp.Database)
	}
	if len(resp.Database) > len("connection error: ")+50 {
		t.Fatalf("error detail should be truncated: %q", resp.Database)
	}
}
