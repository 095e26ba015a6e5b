package timer

import "time"

// TaskSet tracks every task one owner schedules so they can be cancelled
// together on teardown.
type TaskSet struct {
	sched *Scheduler
	ids   map[ID]struct{}
}

// NewTaskSet returns an empty set backed by sched.
func NewTaskSet(sched *Scheduler) *TaskSet {
	return &TaskSet{sched: sched, ids: make(map[ID]struct{})}
}

// Scheduler returns the backing scheduler.
func (ts *TaskSet) Scheduler() *Scheduler {
	return ts.sched
}

// After schedules a tracked one-shot task.
func (ts *TaskSet) After(d time.Duration, fn func()) ID {
	var id ID
	id = ts.sched.After(d, func() {
		delete(ts.ids, id)
		fn()
	})
	ts.ids[id] = struct{}{}
	return id
}

// Every schedules a tracked repeating task.
func (ts *TaskSet) Every(d time.Duration, fn func()) ID {
	id := ts.sched.Every(d, fn)
	ts.ids[id] = struct{}{}
	return id
}

// Cancel cancels one tracked task.
func (ts *TaskSet) Cancel(id ID) bool {
	if _, ok := ts.ids[id]; !ok {
		return false
	}
	delete(ts.ids, id)
	return ts.sched.Cancel(id)
}

// Pending reports whether id belongs to the set and has not fired.
func (ts *TaskSet) Pending(id ID) bool {
	_, ok := ts.ids[id]
	return ok && ts.sched.Pending(id)
}

// CancelAll cancels every pending task in the set and returns how many
// were cancelled.
func (ts *TaskSet) CancelAll() int {
	n := 0
	for id := range ts.ids {
		if ts.sched.Cancel(id) {
			n++
		}
	}
	clear(ts.ids)
	return n
}

// Len returns the number of tracked pending tasks.
func (ts *TaskSet) Len() int {
	return len(ts.ids)
}
