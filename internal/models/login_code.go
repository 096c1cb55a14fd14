package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginCode for the login_codes table. At most one row per email is meant
// to be live at a time: issuance deletes any prior rows before inserting,
// and a successful verification deletes the row (one-shot consumption).
type LoginCode struct {
	ID        uuid.UUID
	Email     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}
