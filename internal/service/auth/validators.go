package auth

import "strings"

const (
	minPasswordLength = 6
	// bcrypt не принимает пароли длиннее 72 байт
	maxPasswordLength = 72
)

func isValidUsername(username string) bool {
	return username != "" && strings.TrimSpace(username) == username
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength && len(password) <= maxPasswordLength
}
