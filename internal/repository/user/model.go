package user

import "time"

type UserDB struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
