package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/convert"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/order"
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
	var orderDTO dto.PostApiPedidosJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.CreateOrder(r.Context(), convert.OrderFromDTO(orderDTO))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidCustomer),
			errors.Is(err, order.ErrInvalidProduct),
			errors.Is(err, order.ErrUnknownProduct),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidValue),
			errors.Is(err, order.ErrInvalidStatus):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			_ = response.InternalError(w)
		}
		return
	}

	err = response.JSON(w, http.StatusCreated, convert.OrderToDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
