package cost_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/convert"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/cost"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var costDTO dto.PostApiCustosJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&costDTO)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	costModify, err := convert.CostFromDTO(costDTO)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.CreateCost(r.Context(), costModify)
	if err != nil {
		switch {
		case errors.Is(err, cost.ErrMissingRequiredFields),
			errors.Is(err, cost.ErrInvalidDescription),
			errors.Is(err, cost.ErrInvalidValue),
			errors.Is(err, cost.ErrInvalidDate),
			errors.Is(err, cost.ErrInvalidType):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create cost")
			_ = response.InternalError(w)
		}
		return
	}

	err = response.JSON(w, http.StatusCreated, convert.CostToDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
