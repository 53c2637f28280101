package login_post

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"cookieshub/internal/generated/dto"
	"cookieshub/internal/handlers/rest/response"
	"cookieshub/internal/service/auth"
	"cookieshub/pkg/logger"
)

const (
	messageSuccess            = "Login realizado com sucesso"
	messageInvalidCredentials = "Usuário ou senha inválidos"
	messageBadRequest         = "Informe usuário e senha"
)

type Config struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
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

// ServeHTTP принимает username и senha как JSON или как поля формы.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	credentials, err := decodeCredentials(r)
	if err != nil {
		h.writeResult(w, http.StatusBadRequest, false, messageBadRequest)
		return
	}

	token, expiresAt, err := h.service.Login(r.Context(), credentials.username, credentials.password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			h.writeResult(w, http.StatusBadRequest, false, messageBadRequest)
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.log.With(
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("login rejected")
			h.writeResult(w, http.StatusUnauthorized, false, messageInvalidCredentials)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("login")
			_ = response.InternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.writeResult(w, http.StatusOK, true, messageSuccess)
}

func (h *Handler) writeResult(w http.ResponseWriter, status int, success bool, message string) {
	err := response.JSON(w, status, dto.LoginResponse{Success: success, Message: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

type credentials struct {
	username string
	password string
}

func decodeCredentials(r *http.Request) (credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return credentials{}, err
		}
		return credentials{
			username: r.PostForm.Get("username"),
			password: r.PostForm.Get("senha"),
		}, nil
	}

	var body dto.PostApiLoginJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return credentials{}, err
	}

	var c credentials
	if body.Username != nil {
		c.username = *body.Username
	}
	if body.Senha != nil {
		c.password = *body.Senha
	}
	return c, nil
}
