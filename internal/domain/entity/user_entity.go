package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PasswordHash is a scrypt digest stored as "salt:digestHex" and must
// never leave the service layer.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Public returns the projection safe to serialize to clients.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// PublicUser is the user projection excluding the password hash.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
