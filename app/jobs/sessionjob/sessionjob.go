// Package sessionjob sweeps the stored session in the background so an
// abandoned login does not stay valid past its expiry.
package sessionjob

import "context"

type Sessions interface {
	ExpireStale(ctx context.Context) error
}

func Register(sessions Sessions) {
	go Trigger(func() error {
		return sessions.ExpireStale(context.Background())
	})
}
