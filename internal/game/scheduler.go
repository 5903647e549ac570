package game

import "time"

// CancelFunc stops a pending callback. Safe to call more than once.
type CancelFunc func()

// Scheduler abstracts delayed execution so sessions never touch the wall
// clock directly. Tests supply a manual implementation and step time
// themselves; production wraps time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) CancelFunc
}

type realScheduler struct{}

// NewScheduler returns the production scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) CancelFunc {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}
