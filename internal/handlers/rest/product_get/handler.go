package product_get

import (
	"errors"
	"net/http"
	"strconv"

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

	res, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrInvalidProductID):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, product.ErrProductNotFound):
			_ = response.Error(w, http.StatusNotFound, "Produto não encontrado")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get product")
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
