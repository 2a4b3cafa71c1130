package engine

import (
	"time"
)

// TaskToken identifies a scheduled task for cancellation
// Zero is never issued
type TaskToken uint64

type scheduledTask struct {
	token TaskToken
	due   time.Time
	fn    func()
}

// TaskQueue holds deferred work as data instead of timer goroutines.
// Tasks fire from RunDue on the session tick, so callbacks mutate game
// state without locks. Deadlines are read off the injected clock: a
// paused game clock keeps every task pending.
//
// The queue guarantees only "not before the deadline, on a tick, in
// schedule order". Callbacks re-validate their own preconditions.
type TaskQueue struct {
	clock     Clock
	nextToken TaskToken
	tasks     []scheduledTask
}

func NewTaskQueue(clock Clock) *TaskQueue {
	return &TaskQueue{clock: clock}
}

// Schedule queues fn to run at the first RunDue at or after now+delay
func (tq *TaskQueue) Schedule(delay time.Duration, fn func()) TaskToken {
	tq.nextToken++
	tq.tasks = append(tq.tasks, scheduledTask{
		token: tq.nextToken,
		due:   tq.clock.Now().Add(delay),
		fn:    fn,
	})
	return tq.nextToken
}

// Cancel drops a pending task
// Returns false for unknown or already fired tokens
func (tq *TaskQueue) Cancel(token TaskToken) bool {
	for i, t := range tq.tasks {
		if t.token == token {
			tq.tasks = append(tq.tasks[:i], tq.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task
// Called on session disposal so stale callbacks never fire
func (tq *TaskQueue) CancelAll() {
	tq.tasks = tq.tasks[:0]
}

// Pending returns the number of queued tasks
func (tq *TaskQueue) Pending() int {
	return len(tq.tasks)
}

// RunDue executes tasks whose deadline has passed, in schedule order,
// and returns how many ran. Tasks scheduled by a running callback are
// deferred to a later pass.
func (tq *TaskQueue) RunDue(now time.Time) int {
	var due []scheduledTask
	remaining := tq.tasks[:0]
	for _, t := range tq.tasks {
		if t.due.After(now) {
			remaining = append(remaining, t)
		} else {
			due = append(due, t)
		}
	}
	tq.tasks = remaining

	for _, t := range due {
		t.fn()
	}
	return len(due)
}
