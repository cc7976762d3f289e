package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/internal/render/store"
	"github.com/mathemascii/mathemascii/pkg/core/health"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
	"github.com/mathemascii/mathemascii/pkg/core/version"
)

// MaxBodyBytes limits request bodies
const MaxBodyBytes = 1 << 20

// InputRequest carries a bare input for the tokens and tree endpoints
type InputRequest struct {
	Input string `json:"input"`
}

// HistoryResponse lists recorded renders
type HistoryResponse struct {
	Records []*store.Record `json:"records"`
	Total   int             `json:"total"`
}

// KeywordsResponse lists keyword entries or search matches
type KeywordsResponse struct {
	Keywords []keywords.Entry `json:"keywords,omitempty"`
	Matches  []keywords.Match `json:"matches,omitempty"`
	Total    int              `json:"total"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// InfoResponse describes the API
type InfoResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	API       string   `json:"api"`
	Endpoints []string `json:"endpoints"`
}

// Handler serves the /api/v1 routes
type Handler struct {
	service *service.Service
	health  *health.Registry
	origins []string
	logger  *logging.Logger
}

// NewHandler creates a new handler. An origin of "*" allows every origin.
func NewHandler(svc *service.Service, reg *health.Registry, origins []string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.New("http")
	}
	return &Handler{service: svc, health: reg, origins: origins, logger: logger}
}

// ServeHTTP routes requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && h.AllowOrigin(origin) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Vary", "Origin")
	}

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		h.handleRoot(w, r)
	case path == "health":
		h.handleHealth(w, r)
	case path == "render":
		h.handleRender(w, r)
	case path == "tokens":
		h.handleTokens(w, r)
	case path == "tree":
		h.handleTree(w, r)
	case path == "keywords":
		h.handleKeywords(w, r)
	case path == "history":
		h.handleHistory(w, r)
	case path == "history/stats":
		h.handleHistoryStats(w, r)
	case strings.HasPrefix(path, "history/"):
		h.handleHistoryRecord(w, r, strings.TrimPrefix(path, "history/"))
	default:
		h.writeError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found", r.URL.Path)
	}
}

// AllowOrigin reports whether a browser origin may call the API
func (h *Handler) AllowOrigin(origin string) bool {
	for _, o := range h.origins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, InfoResponse{
		Service: "mathemascii",
		Version: version.Release,
		API:     version.API,
		Endpoints: []string{
			"POST /api/v1/render",
			"POST /api/v1/tokens",
			"POST /api/v1/tree",
			"GET /api/v1/keywords",
			"GET /api/v1/history",
			"GET /api/v1/history/stats",
			"GET /api/v1/history/{id}",
			"GET /api/v1/health",
			"GET /api/v1/preview/ws",
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report := h.health.Check(ctx)
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodPost) {
		return
	}
	var req service.RenderRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}
	req.Source = "http"

	resp, err := h.service.Render(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTokens(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodPost) {
		return
	}
	var req InputRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Tokens(r.Context(), req.Input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTree(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodPost) {
		return
	}
	var req InputRequest
	if err := h.readJSON(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Tree(r.Context(), req.Input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleKeywords(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()

	if term := q.Get("search"); term != "" {
		matches := keywords.Search(term)
		h.writeJSON(w, http.StatusOK, KeywordsResponse{Matches: matches, Total: len(matches)})
		return
	}

	entries := keywords.All()
	if name := q.Get("category"); name != "" {
		c, ok := keywords.ParseCategory(name)
		if !ok {
			h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Unknown category", name)
			return
		}
		kw, _ := keywords.ByCategory(c)
		entries = kw.Entries()
	}
	h.writeJSON(w, http.StatusOK, KeywordsResponse{Keywords: entries, Total: len(entries)})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	params := r.URL.Query()

	query := store.Query{Contains: params.Get("q")}
	var err error
	if query.Limit, err = intParam(params.Get("limit")); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid limit", err.Error())
		return
	}
	if query.Offset, err = intParam(params.Get("offset")); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid offset", err.Error())
		return
	}
	if since := params.Get("since"); since != "" {
		if query.Since, err = time.Parse(time.RFC3339, since); err != nil {
			h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid since", err.Error())
			return
		}
	}

	records, err := h.service.History(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*store.Record{}
	}
	h.writeJSON(w, http.StatusOK, HistoryResponse{Records: records, Total: len(records)})
}

func (h *Handler) handleHistoryStats(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	stats, err := h.service.HistoryStats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleHistoryRecord(w http.ResponseWriter, r *http.Request, id string) {
	if !h.allow(w, r, http.MethodGet) {
		return
	}
	rec, err := h.service.HistoryRecord(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func (h *Handler) allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", r.Method)
	return false
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{Error: message, Code: code, Details: details})
}

// writeServiceError maps structured errors onto HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	e, ok := mmerror.As(err)
	if !ok {
		h.logger.Error("Request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, string(mmerror.CodeInternal), "Internal error", "")
		return
	}
	if e.Severity().ShouldAlert() {
		h.logger.Error("Request failed", "code", e.Code(), "error", err)
	}
	h.writeError(w, e.HTTPStatus(), e.Code().String(), e.Message(), "")
}
