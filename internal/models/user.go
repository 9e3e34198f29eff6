package models

import (
	"time"
)

// User is the persisted row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	IsAdmin      bool   `db:"is_admin"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
