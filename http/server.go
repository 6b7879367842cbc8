package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/junkyard"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "junkyard-tracker-api"

// DefaultShutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests after its context is canceled.
const DefaultShutdownTimeout = 10 * time.Second

// Server exposes inventory searches over HTTP.
type Server struct {
	searcher junkyard.Searcher
	catalog  junkyard.Catalog
	logger   *slog.Logger
	now      func() time.Time
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger for request failures. Defaults to discarding output.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock sets the clock reported by the health endpoint.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a new Server.
func NewServer(searcher junkyard.Searcher, catalog junkyard.Catalog, opts ...ServerOption) *Server {
	s := &Server{
		searcher: searcher,
		catalog:  catalog,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the API routes wrapped in permissive CORS handling.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.handlePostSearch)
	mux.HandleFunc("GET /search", s.handleGetSearch)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /supported-makes", s.handleSupportedMakes)
	mux.HandleFunc("GET /supported-models", s.handleSupportedModels)
	return cors(mux)
}

// ListenAndServe serves the API on addr until ctx is canceled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

type makesResponse struct {
	Success bool     `json:"success"`
	Makes   []string `json:"makes"`
}

type modelsResponse struct {
	Success bool     `json:"success"`
	Make    string   `json:"make"`
	Models  []string `json:"models"`
}

func (s *Server) handlePostSearch(w http.ResponseWriter, r *http.Request) {
	var req junkyard.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, junkyard.Errorf(junkyard.EINVALID, "Invalid JSON body: %v", err))
		return
	}
	s.search(w, r, &req)
}

func (s *Server) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.search(w, r, req)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, req *junkyard.SearchRequest) {
	resp, err := s.searcher.Search(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: s.now().UTC(),
	})
}

func (s *Server) handleSupportedMakes(w http.ResponseWriter, r *http.Request) {
	makes := s.catalog.Makes()
	if makes == nil {
		makes = []string{}
	}
	writeJSON(w, http.StatusOK, makesResponse{Success: true, Makes: makes})
}

func (s *Server) handleSupportedModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("make") {
		s.writeError(w, junkyard.Errorf(junkyard.EINVALID, "Missing 'make' parameter"))
		return
	}
	makeName := q.Get("make")

	models := s.catalog.Models(makeName)
	if models == nil {
		models = []string{}
	}
	writeJSON(w, http.StatusOK, modelsResponse{Success: true, Make: makeName, Models: models})
}

// parseSearchQuery builds a SearchRequest from query parameters.
// An unparseable distance is ignored and the default applies.
func parseSearchQuery(r *http.Request) (*junkyard.SearchRequest, error) {
	q := r.URL.Query()

	if !q.Has("make") {
		return nil, junkyard.Errorf(junkyard.EINVALID, "Missing 'make' parameter")
	}
	if !q.Has("model") {
		return nil, junkyard.Errorf(junkyard.EINVALID, "Missing 'model' parameter")
	}
	yearMin, err := strconv.ParseUint(q.Get("year_min"), 10, 32)
	if err != nil {
		return nil, junkyard.Errorf(junkyard.EINVALID, "Missing or invalid 'year_min' parameter")
	}
	yearMax, err := strconv.ParseUint(q.Get("year_max"), 10, 32)
	if err != nil {
		return nil, junkyard.Errorf(junkyard.EINVALID, "Missing or invalid 'year_max' parameter")
	}
	if !q.Has("zip_code") {
		return nil, junkyard.Errorf(junkyard.EINVALID, "Missing 'zip_code' parameter")
	}

	req := &junkyard.SearchRequest{
		Make:    q.Get("make"),
		Model:   q.Get("model"),
		YearMin: uint(yearMin),
		YearMax: uint(yearMax),
		ZipCode: q.Get("zip_code"),
	}
	if d, err := strconv.ParseUint(q.Get("distance"), 10, 32); err == nil {
		distance := uint(d)
		req.Distance = &distance
	}
	return req, nil
}

// writeError maps an application error to a status code and error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code, msg := junkyard.ErrorCode(err), junkyard.ErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case junkyard.EINVALID, junkyard.ENOTFOUND:
		status = http.StatusBadRequest
	case junkyard.ETRANSPORT, junkyard.EUPSTREAM:
		msg = "Failed to crawl webpage: " + msg
	default:
		s.logger.Error("request failed", "err", err)
	}

	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// cors allows any origin, method and header, answering preflight requests directly.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
