package product_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/convert"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/product"
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
		_ = response.Error(w, http.StatusBadRequest, product.ErrInvalidProductID.Error())
		return
	}

	var productDTO dto.PutApiProdutosIdJSONRequestBody
	err = json.NewDecoder(r.Body).Decode(&productDTO)
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	productModify := convert.ProductFromDTO(productDTO)
	productModify.ID = &id

	res, err := h.service.UpdateProduct(r.Context(), productModify)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidProductID),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidStock),
			errors.Is(err, product.ErrInvalidStatus):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, product.ErrProductNotFound):
			_ = response.Error(w, http.StatusNotFound, "Produto não encontrado")
		case errors.Is(err, product.ErrConflict):
			_ = response.Error(w, http.StatusConflict, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update product")
			_ = response.InternalError(w)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, convert.ProductToDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
