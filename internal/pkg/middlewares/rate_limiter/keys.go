package rate_limiter

import (
	"net"
	"net/http"
)

// KeyFunc выбирает bucket лимитера для запроса.
type KeyFunc func(r *http.Request) string

// GlobalKey один bucket на весь сервис.
func GlobalKey(*http.Request) string {
	return ""
}

// ClientIP ключ по адресу клиента без порта. X-Forwarded-For не учитывается.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
