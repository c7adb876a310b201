package peer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/meigma/scaffold"
)

// maxRequestBody caps the size of an incoming run request.
const maxRequestBody = 1 << 20

// Handler serves a scaffold service to paired instances.
type Handler struct {
	svc    *scaffold.Service
	logger *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the logger for request handling.
func WithHandlerLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler exposes svc over HTTP:
//
//	POST /v1/scaffold  run a retrieval request
//	GET  /v1/indexes   list advertised indexes
//
// Responses are gzip-compressed when the client accepts it.
func NewHandler(svc *scaffold.Service, opts ...HandlerOption) http.Handler {
	h := &Handler{
		svc:    svc,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/scaffold", h.handleRun)
	mux.HandleFunc("GET /v1/indexes", h.handleIndexes)
	return gzhttp.GzipHandler(mux)
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var req scaffold.Request
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	outcomes, err := h.svc.Run(r.Context(), req)
	switch {
	case errors.Is(err, scaffold.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, scaffold.ErrNoIndexAvailable):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.logger.Error("run failed", "index", req.Index, "scaffold", req.Scaffold, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.logger.Debug("run served", "index", req.Index, "scaffold", req.Scaffold, "outcomes", len(outcomes))
	writeJSON(w, http.StatusOK, runResponse{Outcomes: outcomes})
}

func (h *Handler) handleIndexes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexesResponse{Indexes: h.svc.Advertise()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
