package dashboard_get

import (
	"net/http"

	"cookieshub/internal/handlers/rest/convert"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP четыре агрегата читаются из одного снимка базы.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get dashboard")
		_ = response.InternalError(w)
		return
	}

	err = response.JSON(w, http.StatusOK, convert.DashboardToDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
