package account

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("no current user")

// User is the single local identity of the app. At most one user is current
// at a time; registering a new one replaces it.
type User struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	PasswordHash     string    `json:"password_hash"`
	CompletedTasks   int       `json:"completed_tasks"`
	CompletedTaskIDs []string  `json:"completed_task_ids,omitempty"`

	// Session fields. A user with an empty token is logged out even if the
	// record itself is still persisted.
	Token          string    `json:"token,omitempty"`
	TokenExpiresAt time.Time `json:"token_expires_at,omitempty"`
}

// HasCompleted reports whether the listing already appears in the user's
// completion history. The workflow keeps the list duplicate-free.
func (u *User) HasCompleted(listingID string) bool {
	for _, id := range u.CompletedTaskIDs {
		if id == listingID {
			return true
		}
	}
	return false
}
