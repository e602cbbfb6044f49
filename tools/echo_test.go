package tools_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/tool-server/pkg/toolkit"

	_ "github.com/JaimeStill/tool-server/tools"
)

func toolRouter(t *testing.T, id string) http.Handler {
	t.Helper()
	tool, ok := toolkit.Lookup(id)
	if !ok {
		t.Fatalf("tool %q not registered", id)
	}
	router, err := tool.Router()
	if err != nil {
		t.Fatalf("tool %q router: %v", id, err)
	}
	return router
}

func TestEcho(t *testing.T) {
	router := toolRouter(t, "echo")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
		count   float64
	}{
		{"message only", `{"message":"hi"}`, http.StatusOK, "hi", 1},
		{"repeated", `{"message":"ab","repeat":3}`, http.StatusOK, "ababab", 3},
		{"missing message", `{"repeat":2}`, http.StatusBadRequest, "", 0},
		{"malformed body", `{"message":`, http.StatusBadRequest, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}

			var got map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if got["message"] != tt.message {
				t.Errorf("message = %v, want %q", got["message"], tt.message)
			}
			if got["count"] != tt.count {
				t.Errorf("count = %v, want %v", got["count"], tt.count)
			}
		})
	}
}
