package textify

import (
	"time"

	"go.uber.org/zap"
)

// timer measures elapsed wall time for a named pipeline stage, reported
// only under --profile.
type timer struct {
	label string
	start time.Time
}

func newTimer(label string) timer {
	return timer{label: label, start: time.Now()}
}

func (t timer) log(logger *zap.Logger) {
	logger.Info("Stage timing",
		zap.String("stage", t.label),
		zap.Duration("elapsed", time.Since(t.start)))
}
