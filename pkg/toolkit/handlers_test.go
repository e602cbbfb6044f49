package toolkit_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","count":3}`))

	got, err := toolkit.Decode[payload](req)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("Decode() = %+v, want {Name:x Count:3}", got)
	}
}

func TestDecode_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	if _, err := toolkit.Decode[payload](req); err == nil {
		t.Error("Decode() error = nil, want decode failure")
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	toolkit.Respond(w, http.StatusCreated, payload{Name: "y", Count: 1})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var got payload
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Name != "y" {
		t.Errorf("Name = %q, want %q", got.Name, "y")
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	toolkit.Error(w, nil, http.StatusBadRequest, errors.New("input1 is required"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got["error"] != "input1 is required" {
		t.Errorf("error = %q, want %q", got["error"], "input1 is required")
	}
}
