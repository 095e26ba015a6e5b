// Package timer provides frame-driven deferred callbacks. Time only moves
// when the owner calls Advance, so callbacks always run on the game loop
// and tests can step simulated time exactly.
package timer

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled task. The zero ID is never issued.
type ID uint64

type task struct {
	id       ID
	due      time.Duration
	interval time.Duration // 0 for one-shot tasks
	seq      uint64
	fn       func()
	index    int
}

// Scheduler runs callbacks once their delay has elapsed in simulated time.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	lastID ID
	seq    uint64
	queue  taskQueue
	tasks  map[ID]*task
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[ID]*task)}
}

// Now returns the scheduler's monotonic clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every d until cancelled. A non-positive d is
// treated as one millisecond.
func (s *Scheduler) Every(d time.Duration, fn func()) ID {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) ID {
	if delay < 0 {
		delay = 0
	}
	s.lastID++
	s.seq++
	t := &task{
		id:       s.lastID,
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.tasks[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id ID) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	heap.Remove(&s.queue, t.index)
	return true
}

// Pending reports whether id is still scheduled.
func (s *Scheduler) Pending(id ID) bool {
	_, ok := s.tasks[id]
	return ok
}

// Remaining returns the time left before id fires, or 0 if it is not pending.
func (s *Scheduler) Remaining(id ID) time.Duration {
	t, ok := s.tasks[id]
	if !ok {
		return 0
	}
	return t.due - s.now
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance moves the clock forward by dt and runs every task that has come
// due, earliest first, ties in scheduling order. Tasks scheduled by a
// callback run in the same Advance if they are already due. It returns
// the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > s.now {
			break
		}
		if next.interval > 0 {
			s.seq++
			next.due += next.interval
			next.seq = s.seq
			heap.Fix(&s.queue, next.index)
		} else {
			heap.Pop(&s.queue)
			delete(s.tasks, next.id)
		}
		next.fn()
		fired++
	}
	return fired
}

// Reset cancels everything and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.now = 0
	s.queue = s.queue[:0]
	clear(s.tasks)
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
