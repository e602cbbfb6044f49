package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/loader"
	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildHandler assembles the host exactly as NewService does, against the
// real tools tree at the repository root.
func buildHandler(t *testing.T) (http.Handler, *loader.Report) {
	t.Helper()

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("config finalize: %v", err)
	}

	host := chi.NewRouter()
	ld := loader.New(toolkit.Default, cfg.Tools.MountPrefix, discard())
	report, err := ld.Load(host, os.DirFS("../../tools"))
	if err != nil {
		t.Fatalf("load tools: %v", err)
	}

	registerRoutes(host, report)
	return buildMiddleware(discard(), cfg).Apply(host), report
}

func TestHealthCheck(t *testing.T) {
	handler, _ := buildHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got["message"] != "Tool Server Running" {
		t.Errorf("message = %q, want %q", got["message"], "Tool Server Running")
	}
}

func TestToolReport(t *testing.T) {
	handler, report := buildHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var statuses []toolStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(statuses) != len(report.Outcomes) {
		t.Errorf("len(statuses) = %d, want %d", len(statuses), len(report.Outcomes))
	}

	byTool := map[string]toolStatus{}
	for _, s := range statuses {
		byTool[s.Tool] = s
	}

	if s := byTool["math/add"]; s.Status != string(loader.StatusMounted) || s.Prefix != "/tools/math/add" {
		t.Errorf("math/add = %+v, want mounted at /tools/math/add", s)
	}
	if s := byTool["tools"]; s.Status != string(loader.StatusNoRouter) {
		t.Errorf("tools = %+v, want no-router", s)
	}
	if _, ok := byTool["__template"]; ok {
		t.Error("template file appeared in report")
	}
}

func TestToolRequests(t *testing.T) {
	handler, _ := buildHandler(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		key    string
		want   any
	}{
		{"math/add", "/tools/math/add", `{"a":2,"b":3}`, http.StatusOK, "sum", float64(5)},
		{"math/add trailing slash", "/tools/math/add/", `{"a":2,"b":3}`, http.StatusOK, "sum", float64(5)},
		{"text/reverse", "/tools/text/reverse", `{"value":"abc"}`, http.StatusOK, "reversed", "cba"},
		{"top-level echo", "/tools/echo", `{"message":"hi"}`, http.StatusOK, "message", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}

			var got map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if got[tt.key] != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got[tt.key], tt.want)
			}
		})
	}
}

func TestTemplateNotMounted(t *testing.T) {
	handler, _ := buildHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/tools/__template", strings.NewReader(`{"input1":"x"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
