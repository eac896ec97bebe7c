package domain

import (
	projects "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
)

// LatestLimit caps how many recent tasks a summary carries.
const LatestLimit = 5

// Summary is the derived per-project aggregate of task state.
type Summary struct {
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Ongoing   int    `json:"ongoing"`
	Completed int    `json:"completed"`
	Latest    []Task `json:"latest"`
}

// Summarize computes a Summary from tasks already ordered by creation time
// descending. Status is a closed enum, so the three counters partition Total.
func Summarize(tasks []Task) Summary {
	s := Summary{
		Total:  len(tasks),
		Latest: make([]Task, 0, LatestLimit),
	}

	for _, t := range tasks {
		switch t.Status {
		case projects.StatusPending:
			s.Pending++
		case projects.StatusOngoing:
			s.Ongoing++
		case projects.StatusCompleted:
			s.Completed++
		}
		if len(s.Latest) < LatestLimit {
			s.Latest = append(s.Latest, t)
		}
	}

	return s
}
