package health_get

import (
	"net/http"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/pkg/logger"
)

// Handler liveness: 200 пока процесс жив, хранилище не проверяется.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := response.JSON(w, http.StatusOK, dto.HealthStatus{Status: "ok"})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
