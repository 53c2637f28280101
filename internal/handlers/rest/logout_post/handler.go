package logout_post

import (
	"net/http"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/pkg/logger"
)

type Config struct {
	CookieName   string
	CookieSecure bool
}

type Handler struct {
	log     handlerLogger
	service Service
	cfg     Config
}

func New(log handlerLogger, service Service, cfg Config) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		cfg:     cfg,
	}
}

// ServeHTTP идемпотентен: без cookie или с уже удалённой сессией тоже 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.CookieName); err == nil {
		err = h.service.Logout(r.Context(), cookie.Value)
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("logout")
			_ = response.InternalError(w)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	err := response.JSON(w, http.StatusOK, dto.LoginResponse{Success: true, Message: "Logout realizado com sucesso"})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
