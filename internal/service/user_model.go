package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user in the service layer.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
