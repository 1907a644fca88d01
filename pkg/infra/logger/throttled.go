package logger

import (
	"time"

	"github.com/MyCircle/moderation/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

// Throttled emits a given key at most once per interval. It keeps
// configuration warnings from flooding the log on every request.
type Throttled struct {
	logger *logrus.Logger
	seen   *cache.TTLMap[struct{}]
}

func NewThrottled(logger *logrus.Logger, interval time.Duration) *Throttled {
	return &Throttled{
		logger: logger,
		seen:   cache.NewTTLMap[struct{}](interval),
	}
}

// Entry returns a log entry for key, or nil when key was logged recently.
func (t *Throttled) Entry(key string) *logrus.Entry {
	if !t.seen.SetIfAbsent(key, struct{}{}) {
		return nil
	}
	return logrus.NewEntry(t.logger).WithField("throttle_key", key)
}

func (t *Throttled) Warn(key string, fields logrus.Fields, msg string) bool {
	entry := t.Entry(key)
	if entry == nil {
		return false
	}
	entry.WithFields(fields).Warn(msg)
	return true
}
