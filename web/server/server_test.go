package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/scenes", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body struct {
		Scenes []struct {
			ID     string `json:"id"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"scenes"`
		Limits map[string]paramLimit `json:"limits"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	ids := map[string]bool{}
	for _, sc := range body.Scenes {
		ids[sc.ID] = true
		if sc.Width <= 0 || sc.Height <= 0 {
			t.Errorf("Scene %s has invalid size %dx%d", sc.ID, sc.Width, sc.Height)
		}
	}
	for _, want := range []string{"random", "default", "single-sphere"} {
		if !ids[want] {
			t.Errorf("Scene %q missing from list", want)
		}
	}
	if body.Limits["width"].Max != renderLimits["width"].Max {
		t.Errorf("Expected width max %d, got %d", renderLimits["width"].Max, body.Limits["width"].Max)
	}
}

func TestCORSHeaders(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://example.test")
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got %q", got)
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		expected  int
		expectErr bool
	}{
		{"missing uses default", "", 10, false},
		{"valid value", "n=25", 25, false},
		{"lower bound", "n=1", 1, false},
		{"upper bound", "n=100", 100, false},
		{"below min", "n=0", 0, true},
		{"above max", "n=101", 0, true},
		{"not a number", "n=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got, err := parseIntParam(values, "n", 10, 1, 100)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseRenderRequest(t *testing.T) {
	values, _ := url.ParseQuery("")
	req, err := parseRenderRequest(values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Scene != "random" || req.Width != 400 || req.Samples != 10 || req.Depth != 50 || req.Size != 11 || req.Seed != 42 {
		t.Errorf("Unexpected defaults: %+v", req)
	}

	values, _ = url.ParseQuery("scene=single-sphere&width=64&samples=4&depth=8&size=2&seed=7")
	req, err = parseRenderRequest(values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Scene != "single-sphere" || req.Width != 64 || req.Samples != 4 || req.Depth != 8 || req.Size != 2 || req.Seed != 7 {
		t.Errorf("Unexpected request: %+v", req)
	}

	for _, bad := range []string{"width=4", "samples=0", "depth=1000", "size=-1", "seed=x"} {
		values, _ = url.ParseQuery(bad)
		if _, err := parseRenderRequest(values); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
