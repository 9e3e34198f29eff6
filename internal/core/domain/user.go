package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Profile is the read model behind the profile screen.
type Profile struct {
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsAdmin     bool      `json:"isAdmin"`
	MemberSince time.Time `json:"memberSince"`
}

// ToProfile projects a user onto its public profile.
func (u User) ToProfile() Profile {
	return Profile{
		UserID:      u.UserID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		IsAdmin:     u.IsAdmin,
		MemberSince: u.CreatedAt,
	}
}
