// Package completion implements the one-shot listing completion workflow:
// Open -> Completed, terminal, author-only. The authorization rule lives
// here in the workflow, never in an omitted UI affordance.
package completion

import (
	"context"
	"errors"

	"homegnome/domain/account"
	"homegnome/domain/listing"

	"github.com/labstack/gommon/log"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAlreadyCompleted = errors.New("already completed")
	ErrNotAuthor        = errors.New("not the listing author")
)

// Store is the slice of persistence the workflow needs. SaveCompletion must
// write the listing and the user as one atomic unit.
type Store interface {
	FindListing(ctx context.Context, id string) (*listing.Listing, error)
	SaveCompletion(ctx context.Context, l *listing.Listing, u *account.User) error
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Complete transitions the listing to its terminal state and credits the
// acting user. Guards, in order: a user must be acting, the listing must be
// open, the user must not already have it in their history, and the user
// must be the listing's author.
func (s *Service) Complete(ctx context.Context, listingID string, u *account.User) (*listing.Listing, error) {
	if u == nil {
		return nil, ErrNotAuthenticated
	}

	l, err := s.store.FindListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if l.Completed {
		return nil, ErrAlreadyCompleted
	}
	// Redundant with the flag while there is a single writer, kept as a
	// defensive guard on the user's own history.
	if u.HasCompleted(l.ID) {
		return nil, ErrAlreadyCompleted
	}
	if u.Phone != l.AuthorPhone {
		return nil, ErrNotAuthor
	}

	l.Completed = true
	l.CompletedBy = u.ID
	u.CompletedTasks++
	u.CompletedTaskIDs = append(u.CompletedTaskIDs, l.ID)

	if err := s.store.SaveCompletion(ctx, l, u); err != nil {
		return nil, err
	}

	log.Infof("listing %s completed by user %s", l.ID, u.ID)
	return l, nil
}
