package lander

import (
	"sort"
	"time"
)

// task is a callback waiting for its deadline in game-clock seconds.
type task struct {
	deadline float64
	seq      int
	fn       func()
}

// Scheduler runs one-shot callbacks once the game clock reaches their
// deadline. Tasks cannot be cancelled individually; Clear drops them all.
type Scheduler struct {
	clock func() float64
	seq   int
	tasks []task
}

// NewScheduler creates an empty scheduler reading time from clock.
func NewScheduler(clock func() float64) *Scheduler {
	return &Scheduler{clock: clock}
}

// Schedule runs fn once the clock has advanced by delay.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t := task{
		deadline: s.clock() + delay.Seconds(),
		seq:      s.seq,
		fn:       fn,
	}
	s.seq++

	// Keep tasks ordered by deadline, then by scheduling order.
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].deadline > t.deadline
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// Advance fires every due task in order.
// A task that clears the scheduler prevents the remaining ones from firing.
func (s *Scheduler) Advance() {
	now := s.clock()
	for len(s.tasks) > 0 && s.tasks[0].deadline <= now+clockEpsilon {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		t.fn()
	}
}

// Pending returns the number of tasks not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear discards all pending tasks.
func (s *Scheduler) Clear() {
	s.tasks = nil
}
