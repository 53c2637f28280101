package products_get

import (
	"net/http"

	"cookieshub/internal/entities"
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

// ServeHTTP ?nome=X сужает список до товара с точным именем.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter entities.ProductFilter
	if r.URL.Query().Has("nome") {
		name := r.URL.Query().Get("nome")
		filter.Name = &name
	}

	products, err := h.service.GetProducts(r.Context(), filter)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get products")
		_ = response.InternalError(w)
		return
	}

	err = response.JSON(w, http.StatusOK, convert.ProductsToDTO(products))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
