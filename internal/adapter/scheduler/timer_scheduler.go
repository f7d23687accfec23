// Package scheduler runs one deferred expiration action per hold on the
// runtime timer heap.
package scheduler

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TimerScheduler tracks one *time.Timer per hold id. A timer fires its
// action exactly once; Cancel stops it before it fires. The actions
// themselves are responsible for being no-ops on already-terminal holds,
// the scheduler only guarantees at-most-once firing per Schedule call.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func New() *TimerScheduler {
	return &TimerScheduler{timers: make(map[int64]*time.Timer)}
}

// Schedule arms a timer that runs action d from now. The timer entry is
// removed before the action runs so Cancel after firing is harmless.
func (s *TimerScheduler) Schedule(holdID int64, d time.Duration, action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers[holdID] = time.AfterFunc(d, func() {
		s.remove(holdID)
		action()
	})

	logrus.Debugf("Scheduled expiration for hold %d in %s", holdID, d)
}

// Cancel stops the pending timer for holdID, if any. Stopping a timer that
// already fired is a no-op.
func (s *TimerScheduler) Cancel(holdID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[holdID]; ok {
		t.Stop()
		delete(s.timers, holdID)
	}
}

// Stop cancels every pending timer. Used on shutdown.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *TimerScheduler) remove(holdID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, holdID)
}
