// Package api provides the RESTful HTTP interface of the engine.
//
// Endpoints:
//   - /api/v1/templates: catalog listing and search
//   - /api/v1/templates/{path}: single template lookup
//   - /api/v1/validate: frontmatter validation of posted content
//   - /api/v1/kit: selection resolution with a JSON report
//   - /api/v1/kit/archive: selection resolution to a zip download
//   - /api/v1/structure: project-structure.md generation
//   - /api/v1/reference: frontmatter field and comparison reference
//   - /api/v1/health: health monitoring
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/service"
)

// APIServer provides the HTTP API with middleware support
type APIServer struct {
	service      *service.Service
	errorHandler *errors.HTTPErrorHandler
	port         int
	server       *http.Server
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *service.Service, port int) *APIServer {
	return &APIServer{
		service:      svc,
		errorHandler: errors.NewHTTPErrorHandler(true),
		port:         port,
	}
}

// Start begins serving HTTP requests with middleware
func (s *APIServer) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/templates", s.withMiddleware(s.handleTemplates))
	mux.HandleFunc("/api/v1/templates/", s.withMiddleware(s.handleTemplateByPath))
	mux.HandleFunc("/api/v1/validate", s.withMiddleware(s.handleValidate))
	mux.HandleFunc("/api/v1/kit", s.withMiddleware(s.handleKit))
	mux.HandleFunc("/api/v1/kit/archive", s.withMiddleware(s.handleKitArchive))
	mux.HandleFunc("/api/v1/structure", s.withMiddleware(s.handleStructure))
	mux.HandleFunc("/api/v1/reference", s.withMiddleware(s.handleReference))
	mux.HandleFunc("/api/v1/health", s.withMiddleware(s.handleHealth))

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("API server starting on http://localhost:%d", s.port)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// withMiddleware applies middleware to HTTP handlers
func (s *APIServer) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.loggingMiddleware(
		s.corsMiddleware(
			s.recoveryMiddleware(handler),
		),
	)
}

// loggingMiddleware logs HTTP requests
func (s *APIServer) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		log.Printf("[%s] %s %s - %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	}
}

// corsMiddleware handles CORS headers
func (s *APIServer) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// recoveryMiddleware handles panics in handlers
func (s *APIServer) recoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic in handler: %v", err)
				s.errorHandler.WriteHTTPError(w, errors.InternalError("Internal server error"))
			}
		}()
		next(w, r)
	}
}

// writeJSON writes a JSON response body
func (s *APIServer) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		json.NewEncoder(w).Encode(data)
		return
	}
	w.Write(jsonData)
}

// writeError writes an error response using the error handler
func (s *APIServer) writeError(w http.ResponseWriter, err error) {
	s.errorHandler.WriteHTTPError(w, err)
}

// handleTemplates serves GET /api/v1/templates with optional
// ?q=<query> and ?category=<rules|commands> filters
func (s *APIServer) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	var docs []models.TemplateDocument
	if q := r.URL.Query().Get("q"); q != "" {
		docs = s.service.SearchTemplates(q)
	} else {
		switch r.URL.Query().Get("category") {
		case "":
			docs = s.service.ListTemplates()
		case "rules", "rule":
			docs = s.service.ListByCategory(models.CategoryRule)
		case "commands", "command":
			docs = s.service.ListByCategory(models.CategoryCommand)
		default:
			s.writeError(w, errors.InvalidInputError("unknown category"))
			return
		}
	}

	s.writeJSON(w, map[string]interface{}{
		"templates": summarize(docs),
		"count":     len(docs),
	}, http.StatusOK)
}

// handleTemplateByPath serves GET /api/v1/templates/{path}
func (s *APIServer) handleTemplateByPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/templates/")
	doc, err := s.service.GetTemplate(path)
	if err != nil {
		s.writeError(w, err)
		return
	}

	vr, err := s.service.ValidateTemplate(path)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"path":             doc.Path,
		"name":             doc.Name,
		"category":         doc.Category,
		"description":      doc.Description,
		"default_selected": doc.DefaultSelected,
		"body":             doc.Body,
		"validation":       vr,
	}, http.StatusOK)
}

// validateRequest is the POST body for /api/v1/validate
type validateRequest struct {
	Path     string `json:"path"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// handleValidate validates posted document content
func (s *APIServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.InvalidInputError("invalid JSON body"))
		return
	}

	category := models.Category(req.Category)
	if category == "" {
		category = models.CategoryRule
	}
	if category != models.CategoryRule && category != models.CategoryCommand {
		s.writeError(w, errors.InvalidInputError("unknown category"))
		return
	}

	vr := s.service.ValidateContent(req.Path, category, req.Content)
	s.writeJSON(w, vr, http.StatusOK)
}

// kitRequest is the POST body for /api/v1/kit and /api/v1/kit/archive
type kitRequest struct {
	Paths           []string          `json:"paths"`
	Vars            map[string]string `json:"vars,omitempty"`
	KitName         string            `json:"kit_name,omitempty"`
	IncludeScaffold bool              `json:"include_scaffold,omitempty"`
}

func (req kitRequest) selection() models.SelectionRequest {
	return models.SelectionRequest{
		Paths:           req.Paths,
		Vars:            req.Vars,
		KitName:         req.KitName,
		IncludeScaffold: req.IncludeScaffold,
	}
}

// handleKit resolves a selection and returns the JSON report:
// validation results per template plus the would-be archive listing
func (s *APIServer) handleKit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	var req kitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.InvalidInputError("invalid JSON body"))
		return
	}

	result, err := s.service.BuildKit(req.selection())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"ok":      result.OK,
		"results": result.Results,
		"files":   result.Set.Paths(),
	}, http.StatusOK)
}

// handleKitArchive resolves a selection and streams the zip archive.
// Validation results travel in headers so the download itself stays a
// plain zip body.
func (s *APIServer) handleKitArchive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	var req kitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.InvalidInputError("invalid JSON body"))
		return
	}

	data, result, err := s.service.PackageKit(req.selection())
	if err != nil {
		s.writeError(w, err)
		return
	}

	name := req.KitName
	if name == "" {
		name = kit.DefaultKitName
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".zip"))
	w.Header().Set("X-Kickstart-Valid", fmt.Sprintf("%t", result.OK))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleStructure serves POST /api/v1/structure
func (s *APIServer) handleStructure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	var input kit.StructureInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, errors.InvalidInputError("invalid JSON body"))
		return
	}

	content, vr, err := s.service.GenerateStructure(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"content":    content,
		"validation": vr,
	}, http.StatusOK)
}

// handleReference serves the static frontmatter reference data
func (s *APIServer) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.InvalidInputError("method not allowed"))
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"fields":     s.service.FrontmatterFields(),
		"comparison": s.service.Comparison(),
		"tips": map[string][]string{
			"rules":    s.service.QuickTips("rules"),
			"commands": s.service.QuickTips("commands"),
			"general":  s.service.QuickTips("general"),
		},
	}, http.StatusOK)
}

// handleHealth serves the health check endpoint
func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"templates": len(s.service.ListTemplates()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// templateSummary is the listing shape: bodies are omitted to keep the
// catalog response small
type templateSummary struct {
	Path            string `json:"path"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	SlashName       string `json:"slash_name,omitempty"`
	DefaultSelected bool   `json:"default_selected"`
}

func summarize(docs []models.TemplateDocument) []templateSummary {
	out := make([]templateSummary, len(docs))
	for i, doc := range docs {
		slash := ""
		if doc.Category == models.CategoryCommand {
			slash = doc.SlashName()
		}
		out[i] = templateSummary{
			Path:            doc.Path,
			Name:            doc.Name,
			Category:        string(doc.Category),
			Description:     doc.Description,
			SlashName:       slash,
			DefaultSelected: doc.DefaultSelected,
		}
	}
	return out
}
