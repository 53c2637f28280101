package product_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/convert"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/product"
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
	var productDTO dto.PostApiProdutosJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&productDTO)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.CreateProduct(r.Context(), convert.ProductFromDTO(productDTO))
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidStock),
			errors.Is(err, product.ErrInvalidStatus):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, product.ErrConflict):
			_ = response.Error(w, http.StatusConflict, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create product")
			_ = response.InternalError(w)
		}
		return
	}

	err = response.JSON(w, http.StatusCreated, convert.ProductToDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
