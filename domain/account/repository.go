package account

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Current(ctx context.Context) (*User, error)
	Clear(ctx context.Context) error
}
