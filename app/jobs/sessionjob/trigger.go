package sessionjob

import (
	"time"

	"github.com/labstack/gommon/log"
)

func Trigger(fn func() error) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := fn(); err != nil {
			log.Errorf("error while expiring sessions: %v", err)
			continue
		}
	}
}
