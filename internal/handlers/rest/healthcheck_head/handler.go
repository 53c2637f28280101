package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler readiness: 503 во время остановки и пока база не отвечает на ping.
type Handler struct {
	isShuttingDown *atomic.Bool
	store          StoreProbe
}

func New(isShuttingDown *atomic.Bool, store StoreProbe) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() || !h.store.Up() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
