package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	"github.com/youssefhossamm/cursor-kickstart/internal/service"
)

func newTestServer() *APIServer {
	return NewAPIServer(service.NewService(config.Config{}, nil), 0)
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleTemplatesList(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleTemplates, http.MethodGet, "/api/v1/templates", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Templates []templateSummary `json:"templates"`
		Count     int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 15 || len(resp.Templates) != 15 {
		t.Errorf("count = %d", resp.Count)
	}
}

func TestHandleTemplatesCategoryFilter(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleTemplates, http.MethodGet, "/api/v1/templates?category=rules", "")

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 5 {
		t.Errorf("rule count = %d", resp.Count)
	}
}

func TestHandleTemplateByPath(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleTemplateByPath, http.MethodGet, "/api/v1/templates/commands/debug.md", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["path"] != "commands/debug.md" {
		t.Errorf("path = %v", resp["path"])
	}
	if body, _ := resp["body"].(string); body == "" {
		t.Error("body missing from detail response")
	}
}

func TestHandleTemplateByPathNotFound(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleTemplateByPath, http.MethodGet, "/api/v1/templates/rules/nope.md", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNKNOWN_TEMPLATE") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleValidate(t *testing.T) {
	s := newTestServer()
	body := `{"path":"rules/x.md","category":"rule","content":"---\nglobs: \"*.py\"\n---\nbody"}`
	rec := doRequest(t, s.handleValidate, http.MethodPost, "/api/v1/validate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var vr struct {
		Valid  bool `json:"valid"`
		Issues []struct {
			Message  string `json:"message"`
			Blocking bool   `json:"blocking"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &vr); err != nil {
		t.Fatal(err)
	}
	if vr.Valid {
		t.Error("expected invalid result")
	}
	var found bool
	for _, issue := range vr.Issues {
		if issue.Message == "missing field: description" && issue.Blocking {
			found = true
		}
	}
	if !found {
		t.Errorf("missing-field finding absent: %+v", vr.Issues)
	}
}

func TestHandleKitReport(t *testing.T) {
	s := newTestServer()
	body := `{"paths":["rules/cursor-rules.md","commands/debug.md"]}`
	rec := doRequest(t, s.handleKit, http.MethodPost, "/api/v1/kit", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OK    bool     `json:"ok"`
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || len(resp.Files) != 2 {
		t.Errorf("ok = %t, files = %v", resp.OK, resp.Files)
	}
}

func TestHandleKitUnknownTemplate(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleKit, http.MethodPost, "/api/v1/kit", `{"paths":["rules/nope.md"]}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleKitArchive(t *testing.T) {
	s := newTestServer()
	body := `{"paths":["rules/cursor-rules.md"],"kit_name":"my-kit"}`
	rec := doRequest(t, s.handleKitArchive, http.MethodPost, "/api/v1/kit/archive", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("content type = %s", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "my-kit.zip") {
		t.Errorf("disposition = %s", rec.Header().Get("Content-Disposition"))
	}

	data := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != "my-kit/.cursor/rules/cursor-rules.md" {
		t.Errorf("entries = %+v", zr.File)
	}
}

func TestHandleStructure(t *testing.T) {
	s := newTestServer()
	body := `{"project_name":"Acme","tech_stack":["Go"]}`
	rec := doRequest(t, s.handleStructure, http.MethodPost, "/api/v1/structure", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Content    string `json:"content"`
		Validation struct {
			Valid bool `json:"valid"`
		} `json:"validation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Content, "# Project Structure: Acme") {
		t.Error("content missing heading")
	}
	if !resp.Validation.Valid {
		t.Error("generated structure invalid")
	}
}

func TestHandleReference(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleReference, http.MethodGet, "/api/v1/reference", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, want := range []string{"description", "alwaysApply", "comparison", "tips"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("reference missing %q", want)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s.handleHealth, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
