package entity

import (
	"time"
)

// Base holds the fields shared by every persisted record. Identifiers are
// caller-opaque strings (e.g. "item-1712345678901") and never change once
// assigned.
type Base struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
