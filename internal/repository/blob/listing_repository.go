// Package blob implements the domain repositories over the blobstore
// gateway. Each repository owns one persisted key and serializes its own
// access: the gateway gives no ordering guarantee between a concurrent save
// and load.
package blob

import (
	"context"
	"errors"
	"sync"
	"time"

	"homegnome/domain/listing"
	"homegnome/internal/blobstore"

	"github.com/labstack/gommon/log"
	"github.com/oklog/ulid/v2"
)

const listingsKey = "savedTasks"

type ListingRepository struct {
	mu    sync.Mutex
	blobs *blobstore.Store
}

func NewListingRepository(blobs *blobstore.Store) *ListingRepository {
	return &ListingRepository{blobs: blobs}
}

// Append assigns a fresh ID and timestamp, adds the listing to the end of
// the ordered sequence, and persists the full sequence.
func (r *ListingRepository) Append(ctx context.Context, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := r.load(ctx)
	l.ID = "lst_" + ulid.Make().String()
	l.CreatedAt = time.Now()
	seq = append(seq, *l)
	return r.blobs.Save(ctx, listingsKey, seq)
}

// FindAll returns the full persisted sequence in insertion order.
func (r *ListingRepository) FindAll(ctx context.Context) ([]listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.load(ctx) {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, listing.ErrNotFound
}

func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := r.load(ctx)
	replaced, err := replace(seq, l)
	if err != nil {
		return err
	}
	return r.blobs.Save(ctx, listingsKey, replaced)
}

// load reads the sequence, choosing the empty-default policy here rather
// than in the gateway: an unset key is first launch and a corrupt blob is
// recovered as no saved state, logged so the loss is visible.
func (r *ListingRepository) load(ctx context.Context) []listing.Listing {
	var seq []listing.Listing
	err := r.blobs.Load(ctx, listingsKey, &seq)

	var decodeErr *blobstore.DecodeError
	switch {
	case err == nil:
		return seq
	case errors.Is(err, blobstore.ErrNotFound):
		return nil
	case errors.As(err, &decodeErr):
		log.Warnf("discarding corrupt listing state: %v", decodeErr)
		return nil
	default:
		log.Errorf("failed to load listings: %v", err)
		return nil
	}
}

func replace(seq []listing.Listing, l *listing.Listing) ([]listing.Listing, error) {
	for i := range seq {
		if seq[i].ID == l.ID {
			seq[i] = *l
			return seq, nil
		}
	}
	return nil, listing.ErrNotFound
}
