package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := NewScheduler()
	calls := 0
	id := s.After(100*time.Millisecond, func() { calls++ })

	assert.Equal(t, 0, s.Advance(99*time.Millisecond))
	assert.True(t, s.Pending(id))
	assert.Equal(t, time.Millisecond, s.Remaining(id))

	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending(id))

	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	s := NewScheduler()
	calls := 0
	id := s.Every(10*time.Millisecond, func() { calls++ })

	s.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, calls)

	require.True(t, s.Cancel(id))
	s.Advance(time.Second)
	assert.Equal(t, 3, calls)
	assert.False(t, s.Cancel(id))
}

func TestAdvanceRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCallbackMayScheduleAndCancel(t *testing.T) {
	s := NewScheduler()
	var order []string
	var victim ID
	s.After(10*time.Millisecond, func() {
		order = append(order, "first")
		s.Cancel(victim)
		s.After(0, func() { order = append(order, "chained") })
	})
	victim = s.After(20*time.Millisecond, func() { order = append(order, "victim") })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"first", "chained"}, order)
	assert.Equal(t, 0, s.Len())
}

func TestReset(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(time.Millisecond, func() { fired = true })
	s.Advance(time.Microsecond)
	s.Reset()

	assert.Equal(t, time.Duration(0), s.Now())
	assert.Equal(t, 0, s.Len())
	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestTaskSetCancelAll(t *testing.T) {
	s := NewScheduler()
	ts := NewTaskSet(s)
	other := false
	fired := 0

	ts.After(100*time.Millisecond, func() { fired++ })
	ts.Every(50*time.Millisecond, func() { fired++ })
	s.After(100*time.Millisecond, func() { other = true })
	require.Equal(t, 2, ts.Len())

	assert.Equal(t, 2, ts.CancelAll())
	assert.Equal(t, 0, ts.Len())

	s.Advance(time.Second)
	assert.Equal(t, 0, fired)
	assert.True(t, other, "tasks outside the set are untouched")
}

func TestTaskSetForgetsFiredTasks(t *testing.T) {
	s := NewScheduler()
	ts := NewTaskSet(s)
	id := ts.After(time.Millisecond, func() {})
	require.True(t, ts.Pending(id))

	s.Advance(time.Millisecond)
	assert.False(t, ts.Pending(id))
	assert.Equal(t, 0, ts.Len())
	assert.False(t, ts.Cancel(id))
}
