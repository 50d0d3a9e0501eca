package timeline

import (
	"sort"
	"time"

	scheduledomain "dayplan-backend/internal/schedule/domain"
	taskdomain "dayplan-backend/internal/task/domain"
	"dayplan-backend/internal/task/planner"
)

// DefaultTaskBlockMinutes is the assumed length of a task block when
// the task has no duration.
const DefaultTaskBlockMinutes = 60

// Item is one positioned entry of a composed day schedule.
type Item struct {
	scheduledomain.Appointment
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Window is the bounded hour range rendered for a selected day.
type Window struct {
	StartHour int `json:"start_hour"`
	HourCount int `json:"hour_count"`
}

// WindowFor computes the visible hour window for a day. Viewing today
// starts at the current hour and shows only the remaining hours; any
// other day shows all 24. Never cached: call again when the wall clock
// advances or the day changes.
func WindowFor(day, now time.Time) Window {
	if planner.SameDay(day, now) {
		h := now.In(time.Local).Hour()
		return Window{StartHour: h, HourCount: 24 - h}
	}
	return Window{StartHour: 0, HourCount: 24}
}

// TaskBlocks derives appointment views from the tasks that belong to
// day and carry a deadline with a time of day. A deadline at local
// midnight (00:00:00) means "date only, no time set" and produces no
// block.
func TaskBlocks(tasks []taskdomain.Task, day time.Time) []scheduledomain.Appointment {
	var blocks []scheduledomain.Appointment
	for _, t := range tasks {
		if t.Deadline == nil || !planner.SameDay(*t.Deadline, day) {
			continue
		}
		d := t.Deadline.In(time.Local)
		if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 {
			continue
		}
		minutes := t.DurationOrDefault(DefaultTaskBlockMinutes)
		blocks = append(blocks, scheduledomain.Appointment{
			ID:        t.ID,
			UserID:    t.UserID,
			Name:      t.Name,
			StartTime: d,
			EndTime:   d.Add(time.Duration(minutes) * time.Minute),
			IsTask:    true,
		})
	}
	return blocks
}

// Compose merges a day's fixed appointments with task-derived blocks
// into the ordered, positioned, visibility-filtered schedule for that
// day. Items that already elapsed are suppressed only when viewing
// today (their position is negative against the current-hour window).
// Result order is start time ascending, ties broken by id.
func Compose(appointments []scheduledomain.Appointment, tasks []taskdomain.Task, day, now time.Time) ([]Item, Window) {
	win := WindowFor(day, now)

	var dayAppointments []scheduledomain.Appointment
	for _, a := range appointments {
		if planner.SameDay(a.StartTime, day) {
			dayAppointments = append(dayAppointments, a)
		}
	}
	merged := append(dayAppointments, TaskBlocks(tasks, day)...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StartTime.Equal(merged[j].StartTime) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].StartTime.Before(merged[j].StartTime)
	})

	viewingToday := planner.SameDay(day, now)
	var items []Item
	for _, a := range merged {
		top := Position(a.StartTime, win.StartHour)
		if top < 0 && viewingToday {
			continue
		}
		height := Extent(a.StartTime, a.EndTime)
		if height < MinVisibleExtent {
			height = MinVisibleExtent
		}
		items = append(items, Item{Appointment: a, Top: top, Height: height})
	}
	return items, win
}
