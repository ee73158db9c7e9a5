package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleOrganizer  Role = "organizer"
	RoleVenueOwner Role = "venue_owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOrganizer, RoleVenueOwner:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
