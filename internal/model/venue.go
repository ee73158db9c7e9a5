package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Venue struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	OwnerID    uuid.UUID      `json:"owner_id" db:"owner_id"`
	Name       string         `json:"name" db:"name"`
	Active     bool           `json:"active" db:"active"`
	Capacity   int            `json:"capacity" db:"capacity"`
	Facilities pq.StringArray `json:"facilities" db:"facilities"`
}
