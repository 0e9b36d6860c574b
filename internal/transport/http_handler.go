package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/service"
)

const maxBodyBytes = 1 << 16

// HTTPHandler serves the view API over the explorer service.
type HTTPHandler struct {
	explorer Explorer
	logger   *zap.Logger
	mux      *http.ServeMux
}

// NewHTTPHandler returns an HTTPHandler instance.
func NewHTTPHandler(explorer Explorer, logger *zap.Logger) *HTTPHandler {
	h := &HTTPHandler{
		explorer: explorer,
		logger:   logger.Named("httpHandler"),
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /api/state", h.state)
	h.mux.HandleFunc("POST /api/manifest", h.selectManifest)
	h.mux.HandleFunc("POST /api/watch", h.watch)
	h.mux.HandleFunc("POST /api/bookmarks/toggle", h.toggleBookmark)
	h.mux.HandleFunc("POST /api/notifications/toggle", h.toggleNotification)
	h.mux.HandleFunc("POST /api/network/control", h.controlNetwork)
	h.mux.HandleFunc("POST /api/session/reset", h.resetSession)
	return h
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type manifestRequest struct {
	ManifestPath string `json:"manifest_path"`
}

type watchRequest struct {
	ContractIdentifier string `json:"contract_identifier"`
	FieldName          string `json:"field_name"`
}

type toggleRequest struct {
	FieldIdentifier string `json:"field_identifier"`
}

type toggleResponse struct {
	FieldIdentifier string `json:"field_identifier"`
	Enabled         bool   `json:"enabled"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) state(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.explorer.Snapshot())
}

func (h *HTTPHandler) selectManifest(w http.ResponseWriter, r *http.Request) {
	var req manifestRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.explorer.SelectManifest(req.ManifestPath); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *HTTPHandler) watch(w http.ResponseWriter, r *http.Request) {
	var req watchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.explorer.WatchField(req.ContractIdentifier, req.FieldName); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *HTTPHandler) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !h.decode(w, r, &req) {
		return
	}
	on, err := h.explorer.ToggleBookmark(r.Context(), req.FieldIdentifier)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toggleResponse{FieldIdentifier: req.FieldIdentifier, Enabled: on})
}

func (h *HTTPHandler) toggleNotification(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !h.decode(w, r, &req) {
		return
	}
	on, err := h.explorer.ToggleNotification(r.Context(), req.FieldIdentifier)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toggleResponse{FieldIdentifier: req.FieldIdentifier, Enabled: on})
}

func (h *HTTPHandler) controlNetwork(w http.ResponseWriter, r *http.Request) {
	var req model.NetworkControlRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.explorer.ControlNetwork(req); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *HTTPHandler) resetSession(w http.ResponseWriter, _ *http.Request) {
	h.explorer.ResetSession()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidFieldIdentifier), errors.Is(err, service.ErrInvalidIntent):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownField):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrIntentRejected):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("intent failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}
