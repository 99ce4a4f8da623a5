package blob

import (
	"context"
	"errors"
	"sync"

	"homegnome/domain/account"
	"homegnome/internal/blobstore"

	"github.com/labstack/gommon/log"
)

const currentUserKey = "currentUser"

type AccountRepository struct {
	mu    sync.Mutex
	blobs *blobstore.Store
}

func NewAccountRepository(blobs *blobstore.Store) *AccountRepository {
	return &AccountRepository{blobs: blobs}
}

func (r *AccountRepository) Save(ctx context.Context, u *account.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blobs.Save(ctx, currentUserKey, u)
}

// Current returns the single persisted user. A corrupt blob degrades to the
// logged-out state rather than an error.
func (r *AccountRepository) Current(ctx context.Context) (*account.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var u account.User
	err := r.blobs.Load(ctx, currentUserKey, &u)

	var decodeErr *blobstore.DecodeError
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, blobstore.ErrNotFound):
		return nil, account.ErrNotFound
	case errors.As(err, &decodeErr):
		log.Warnf("discarding corrupt user state: %v", decodeErr)
		return nil, account.ErrNotFound
	default:
		return nil, err
	}
}

func (r *AccountRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blobs.Delete(ctx, currentUserKey)
}
