package models

import "github.com/google/uuid"

// UserAuth is the persisted account row, including the password hash.
type UserAuth struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	AvatarURL    string
	PasswordHash string
}

type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
