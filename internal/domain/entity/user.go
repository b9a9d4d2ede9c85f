package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Usernames are unique and case-sensitive;
// the credential is only ever stored as a bcrypt hash.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique, case-sensitive login identifier.
	PasswordHash string    // Bcrypt hash of the credential. Never the cleartext.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
