package transport

import (
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// StatusPath is the REST route of the network status snapshot.
const StatusPath = "/api/v0.1/status"

// StatusHandler serves the last published network status as JSON.
type StatusHandler struct {
	reader    StatusReader
	marshaler runtime.Marshaler
	logger    *zap.Logger
}

// NewStatusHandler returns a StatusHandler reading snapshots from reader.
func NewStatusHandler(reader StatusReader, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		reader:    reader,
		marshaler: &runtime.JSONBuiltin{},
		logger:    logger.Named("statusHandler"),
	}
}

// Register mounts the handler on a gateway mux.
func (h *StatusHandler) Register(mux *runtime.ServeMux) error {
	return mux.HandlePath(http.MethodGet, StatusPath, h.HandlePath)
}

// HandlePath adapts the handler to runtime.HandlerFunc.
func (h *StatusHandler) HandlePath(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.ServeHTTP(w, r)
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	snapshot := h.reader.Read()
	body, err := h.marshaler.Marshal(snapshot)
	if err != nil {
		h.logger.Error("marshal network status", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.marshaler.ContentType(snapshot))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write network status", zap.Error(err))
	}
}
