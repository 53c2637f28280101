package cost_delete

import (
	"errors"
	"net/http"
	"strconv"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/cost"
	"cookieshub/pkg/logger"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, cost.ErrInvalidCostID.Error())
		return
	}

	err = h.service.DeleteCost(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, cost.ErrInvalidCostID):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, cost.ErrCostNotFound):
			_ = response.Error(w, http.StatusNotFound, "Custo não encontrado")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("delete cost")
			_ = response.InternalError(w)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, dto.Message{Message: "Custo excluído com sucesso"})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
