package session_gate

import (
	"context"
	"errors"
	"net/http"

	"cookieshub/internal/entities"
	"cookieshub/internal/service/auth"
	"cookieshub/pkg/logger"
)

type ctxKey struct{}

// Page пускает к защищённой странице только с живой сессией, иначе 302 на loginPath.
func Page(log handlerLogger, authenticator Authenticator, cookieName, loginPath string) func(http.Handler) http.Handler {
	return gate(log, authenticator, cookieName, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginPath, http.StatusFound)
	})
}

// API тот же контроль для /api, отказ отдаётся как 401 JSON.
func API(log handlerLogger, authenticator Authenticator, cookieName string) func(http.Handler) http.Handler {
	return gate(log, authenticator, cookieName, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	})
}

func gate(
	log handlerLogger,
	authenticator Authenticator,
	cookieName string,
	deny http.HandlerFunc,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				deny(w, r)
				return
			}

			session, err := authenticator.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthorized) {
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("authenticate session")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"internal error"}`))
					return
				}
				deny(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext сессия, пропущенная гейтом.
func SessionFromContext(ctx context.Context) (*entities.Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(*entities.Session)
	return session, ok
}
