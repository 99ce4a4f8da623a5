package listing

import "context"

type Repository interface {
	Append(ctx context.Context, l *Listing) error
	FindAll(ctx context.Context) ([]Listing, error)
	FindByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, l *Listing) error
}
