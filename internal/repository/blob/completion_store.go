package blob

import (
	"context"

	"homegnome/domain/account"
	"homegnome/domain/listing"
	"homegnome/internal/blobstore"
)

// CompletionStore gives the completion workflow its one atomic unit: the
// updated listing sequence and the credited user are written in a single
// transaction, so a crash cannot leave the counter incremented without the
// listing flagged or vice versa.
type CompletionStore struct {
	blobs    *blobstore.Store
	listings *ListingRepository
}

func NewCompletionStore(blobs *blobstore.Store, listings *ListingRepository) *CompletionStore {
	return &CompletionStore{blobs: blobs, listings: listings}
}

func (s *CompletionStore) FindListing(ctx context.Context, id string) (*listing.Listing, error) {
	return s.listings.FindByID(ctx, id)
}

func (s *CompletionStore) SaveCompletion(ctx context.Context, l *listing.Listing, u *account.User) error {
	s.listings.mu.Lock()
	defer s.listings.mu.Unlock()

	seq, err := replace(s.listings.load(ctx), l)
	if err != nil {
		return err
	}
	return s.blobs.SaveAll(ctx, map[string]any{
		listingsKey:    seq,
		currentUserKey: u,
	})
}
