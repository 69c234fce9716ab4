package queue

import (
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

// Priority orders fetch jobs; lower values run first.
type Priority int

const (
	PriorityLive     Priority = 0
	PriorityUpcoming Priority = 1
	PriorityRecent   Priority = 2
)

// PriorityForMode derives a job priority from its display mode: live games
// outrank upcoming fixtures, which outrank recent results.
func PriorityForMode(m domain.Mode) Priority {
	switch m {
	case domain.ModeLive:
		return PriorityLive
	case domain.ModeUpcoming:
		return PriorityUpcoming
	default:
		return PriorityRecent
	}
}

// Job is one requested fetch for a league+mode.
type Job struct {
	League     string
	Mode       domain.Mode
	Priority   Priority
	Attempts   int
	EnqueuedAt time.Time

	seq uint64
}

// Result is the terminal outcome of a job: either Games on success or Err
// after retries are exhausted or a permanent failure occurred.
type Result struct {
	Job         Job
	Games       []domain.Game
	Err         error
	CompletedAt time.Time
}

// jobHeap orders jobs by priority, then by enqueue sequence so ordering is
// FIFO within a priority level.
type jobHeap []*Job

func (h jobHeap) Len() int { return len(h) }

func (h jobHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) {
	*h = append(*h, x.(*Job))
}

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	job := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return job
}
