// Package planner holds the day-scoped ordering logic for task
// collections: partitioning a flat collection into the subset that
// belongs to a calendar day, and reordering that subset (drag moves,
// AI-suggested rankings) without disturbing the rest.
//
// All functions are pure: they never mutate their input slices and
// operate only on the snapshot they are given.
package planner

import (
	"time"

	"dayplan-backend/internal/task/domain"
)

// SameDay reports whether a and b fall on the same local calendar day.
// Both instants are read in the process's local zone, so deadlines
// stored as UTC compare against the day the user actually sees.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// BelongsToDay reports whether a task belongs to the partition of day.
// A task with no deadline belongs to every "today" partition; callers
// decide what "today" is by passing the wall-clock day.
func BelongsToDay(task *domain.Task, day time.Time) bool {
	if task.Deadline == nil {
		return true
	}
	return SameDay(*task.Deadline, day)
}

// Partition splits tasks into the day-bound subset and the remainder.
// Both results preserve the relative order of the input, and together
// they are a lossless permutation of it. The returned slices share no
// backing array with the input or each other.
func Partition(tasks []domain.Task, day time.Time) (today, other []domain.Task) {
	for _, t := range tasks {
		if BelongsToDay(&t, day) {
			today = append(today, t)
		} else {
			other = append(other, t)
		}
	}
	return today, other
}

// TasksOnDate returns, in input order, the tasks whose deadline falls
// on the given date. Unlike Partition, undated tasks are excluded:
// this is the day-list view for an explicitly selected calendar date.
func TasksOnDate(tasks []domain.Task, date time.Time) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Deadline != nil && SameDay(*t.Deadline, date) {
			out = append(out, t)
		}
	}
	return out
}
