package t2048

import (
	"sort"
	"time"
)

// Clock supplies wall-clock time to a session.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TaskID identifies a scheduled task.
type TaskID uint64

type scheduledTask struct {
	id  TaskID
	due time.Time
	fn  func()
}

// Scheduler is a deadline queue owned by one session.
// Nothing runs on its own: due tasks fire only from RunDue, on the caller's
// goroutine, which keeps every state change on the session's event loop.
type Scheduler struct {
	lastID TaskID
	tasks  map[TaskID]scheduledTask
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[TaskID]scheduledTask)}
}

// Schedule registers fn to run once at or after due.
func (s *Scheduler) Schedule(due time.Time, fn func()) TaskID {
	s.lastID++
	s.tasks[s.lastID] = scheduledTask{id: s.lastID, due: due, fn: fn}
	return s.lastID
}

// Cancel drops a pending task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	clear(s.tasks)
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// RunDue fires every task due at or before now, earliest first, and returns how
// many ran. A task scheduled by another task fires on a later call.
func (s *Scheduler) RunDue(now time.Time) int {
	var due []scheduledTask
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// An earlier task may have cancelled this one.
		if _, ok := s.tasks[t.id]; !ok {
			continue
		}
		delete(s.tasks, t.id)
		t.fn()
		ran++
	}
	return ran
}
