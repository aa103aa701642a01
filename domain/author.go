package domain

import (
	"context"
	"time"
)

// User represents an account of the publishing service.
// Comments only ever expose a user through AuthorSummary.
type User struct {
	ID        int64     // Unique identifier
	UUID      string    // Public identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Profile   Profile   // Personal profile, never exposed by comments
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Profile holds the profile-bearing fields of a user.
type Profile struct {
	Email    string
	Avatar   string
	Bio      string
	Location string
}

// AuthorSummary is the de-identified projection of a user attached to a comment.
type AuthorSummary struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Summary strips the internal id and the profile from u.
func (u *User) Summary() AuthorSummary {
	return AuthorSummary{
		UUID:     u.UUID,
		Name:     u.Name,
		Username: u.Username,
	}
}

// UserRepository defines the contract for user lookups needed by comments.
type UserRepository interface {
	// GetByIDs retrieves the users with the given IDs. Missing users are skipped.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
