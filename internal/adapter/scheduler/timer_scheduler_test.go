package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"github.com/dmalx/tickethold/internal/adapter/scheduler"
)

func TestSchedule_FiresOnceAfterDuration(t *testing.T) {
	s := scheduler.New()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule(1, 30*time.Millisecond, func() { fired.Inc() })

	assert.Equal(t, int32(0), fired.Load(), "action must not fire early")

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// No second firing.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestCancel_PreventsFiring(t *testing.T) {
	s := scheduler.New()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule(1, 40*time.Millisecond, func() { fired.Inc() })
	s.Cancel(1)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestCancel_AfterFiringIsHarmless(t *testing.T) {
	s := scheduler.New()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule(1, 10*time.Millisecond, func() { fired.Inc() })

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	s.Cancel(1)
	assert.Equal(t, int32(1), fired.Load())
}

func TestStop_CancelsAllPending(t *testing.T) {
	s := scheduler.New()

	var fired atomic.Int32
	for id := int64(1); id <= 5; id++ {
		s.Schedule(id, 40*time.Millisecond, func() { fired.Inc() })
	}
	s.Stop()

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestSchedule_IndependentHolds(t *testing.T) {
	s := scheduler.New()
	defer s.Stop()

	var first, second atomic.Int32
	s.Schedule(1, 20*time.Millisecond, func() { first.Inc() })
	s.Schedule(2, 20*time.Millisecond, func() { second.Inc() })
	s.Cancel(1)

	assert.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}
