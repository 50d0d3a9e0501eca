package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplan-backend/internal/task/domain"
)

func dateAt(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.Local)
	return &t
}

func taskNames(tasks []domain.Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}

func TestPartition(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	nextDay := day.AddDate(0, 0, 1)

	tasks := []domain.Task{
		{ID: "1", Name: "on day", Deadline: dateAt(day, 9, 0)},
		{ID: "2", Name: "undated"},
		{ID: "3", Name: "next day", Deadline: dateAt(nextDay, 9, 0)},
		{ID: "4", Name: "on day late", Deadline: dateAt(day, 23, 30)},
	}

	today, other := Partition(tasks, day)

	assert.Equal(t, []string{"on day", "undated", "on day late"}, taskNames(today))
	assert.Equal(t, []string{"next day"}, taskNames(other))
	assert.Equal(t, len(tasks), len(today)+len(other))
}

func TestPartition_Disjoint(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		{ID: "a", Deadline: dateAt(day, 8, 0)},
		{ID: "b", Deadline: dateAt(day.AddDate(0, 0, 2), 8, 0)},
		{ID: "c"},
		{ID: "d", Deadline: dateAt(day.AddDate(0, 0, -1), 8, 0)},
	}

	today, other := Partition(tasks, day)

	seen := map[string]int{}
	for _, task := range today {
		seen[task.ID]++
	}
	for _, task := range other {
		seen[task.ID]++
	}
	require.Len(t, seen, len(tasks))
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %s appears %d times", id, count)
	}
}

func TestPartition_Idempotent(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		{ID: "1", Deadline: dateAt(day, 9, 0)},
		{ID: "2"},
		{ID: "3", Deadline: dateAt(day.AddDate(0, 0, 1), 9, 0)},
	}

	today1, other1 := Partition(tasks, day)
	today2, other2 := Partition(tasks, day)

	assert.Equal(t, today1, today2)
	assert.Equal(t, other1, other2)
}

func TestPartition_Empty(t *testing.T) {
	today, other := Partition(nil, time.Now())
	assert.Empty(t, today)
	assert.Empty(t, other)
}

func TestPartition_DoesNotMutateInput(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		{ID: "1", Name: "x", Deadline: dateAt(day, 9, 0)},
		{ID: "2", Name: "y", Deadline: dateAt(day.AddDate(0, 0, 1), 9, 0)},
		{ID: "3", Name: "z"},
	}
	snapshot := append([]domain.Task(nil), tasks...)

	today, _ := Partition(tasks, day)
	today[0].Name = "changed"

	assert.Equal(t, snapshot, tasks)
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same moment",
			a:    time.Date(2024, 5, 15, 9, 0, 0, 0, time.Local),
			b:    time.Date(2024, 5, 15, 9, 0, 0, 0, time.Local),
			want: true,
		},
		{
			name: "different hours same day",
			a:    time.Date(2024, 5, 15, 0, 0, 1, 0, time.Local),
			b:    time.Date(2024, 5, 15, 23, 59, 59, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 5, 15, 23, 59, 59, 0, time.Local),
			b:    time.Date(2024, 5, 16, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day number different month",
			a:    time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local),
			b:    time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
		})
	}
}

// setLocalZone overrides the process zone for a test so that
// zone-sensitive behavior can be pinned to something other than UTC.
func setLocalZone(t *testing.T, loc *time.Location) {
	t.Helper()
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })
}

func TestSameDay_ReadsLocalZone(t *testing.T) {
	setLocalZone(t, time.FixedZone("UTC+2", 2*60*60))

	t.Run("UTC evening is the next local day", func(t *testing.T) {
		// 23:00Z is 01:00 local on the 16th
		deadline := time.Date(2024, 5, 15, 23, 0, 0, 0, time.UTC)
		nextDay := time.Date(2024, 5, 16, 0, 0, 0, 0, time.Local)
		assert.True(t, SameDay(deadline, nextDay))
		assert.False(t, SameDay(deadline, time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)))
	})

	t.Run("mixed zones compare the same instant", func(t *testing.T) {
		utc := time.Date(2024, 5, 15, 7, 0, 0, 0, time.UTC)
		local := utc.In(time.Local)
		assert.True(t, SameDay(utc, local))
	})
}

func TestPartition_UTCDeadlineCrossesLocalMidnight(t *testing.T) {
	setLocalZone(t, time.FixedZone("UTC+2", 2*60*60))

	// 23:00Z on the 15th falls on the 16th in local time
	late := time.Date(2024, 5, 15, 23, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "1", Name: "crosses midnight", Deadline: &late},
		{ID: "2", Name: "undated"},
	}

	day16 := time.Date(2024, 5, 16, 0, 0, 0, 0, time.Local)
	today, other := Partition(tasks, day16)
	assert.Equal(t, []string{"crosses midnight", "undated"}, taskNames(today))
	assert.Empty(t, other)

	day15 := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	today, other = Partition(tasks, day15)
	assert.Equal(t, []string{"undated"}, taskNames(today))
	assert.Equal(t, []string{"crosses midnight"}, taskNames(other))
}

func TestTasksOnDate_ExcludesUndated(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		{ID: "1", Name: "dated", Deadline: dateAt(day, 14, 0)},
		{ID: "2", Name: "undated"},
		{ID: "3", Name: "other day", Deadline: dateAt(day.AddDate(0, 0, 3), 14, 0)},
	}

	got := TasksOnDate(tasks, day)
	assert.Equal(t, []string{"dated"}, taskNames(got))
}
