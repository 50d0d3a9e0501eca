package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplan-backend/internal/task/domain"
)

func reorderFixture(day time.Time) []domain.Task {
	other := day.AddDate(0, 0, 1)
	return []domain.Task{
		{ID: "t1", Name: "A", Deadline: dateAt(day, 9, 0)},
		{ID: "x1", Name: "X", Deadline: dateAt(other, 9, 0)},
		{ID: "t2", Name: "B", Deadline: dateAt(day, 10, 0)},
		{ID: "t3", Name: "C"},
		{ID: "x2", Name: "Y", Deadline: dateAt(other, 11, 0)},
	}
}

func TestMove(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)

	t.Run("moves within day subsequence", func(t *testing.T) {
		tasks := reorderFixture(day)
		// day subsequence is [A B C]; move A after B
		result := Move(tasks, day, 0, 1)

		today, other := Partition(result, day)
		assert.Equal(t, []string{"B", "A", "C"}, taskNames(today))
		assert.Equal(t, []string{"X", "Y"}, taskNames(other))
	})

	t.Run("moves last to first", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := Move(tasks, day, 2, 0)

		today, _ := Partition(result, day)
		assert.Equal(t, []string{"C", "A", "B"}, taskNames(today))
	})

	t.Run("is a permutation", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := Move(tasks, day, 0, 2)

		require.Len(t, result, len(tasks))
		ids := map[string]bool{}
		for _, task := range result {
			ids[task.ID] = true
		}
		for _, task := range tasks {
			assert.True(t, ids[task.ID], "task %s lost by move", task.ID)
		}
	})

	t.Run("out of range source is a no-op", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := Move(tasks, day, 7, 0)
		assert.Equal(t, tasks, result)
	})

	t.Run("negative target is a no-op", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := Move(tasks, day, 0, -1)
		assert.Equal(t, tasks, result)
	})

	t.Run("keeps non-day tasks identical", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := Move(tasks, day, 0, 2)

		_, before := Partition(tasks, day)
		_, after := Partition(result, day)
		assert.Equal(t, before, after)
	})
}

func TestMoveByID(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)

	t.Run("resolves ids against day subsequence", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := MoveByID(tasks, day, "t3", "t1")

		today, _ := Partition(result, day)
		assert.Equal(t, []string{"C", "A", "B"}, taskNames(today))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := MoveByID(tasks, day, "missing", "t1")
		assert.Equal(t, tasks, result)
	})

	t.Run("id outside day partition is a no-op", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := MoveByID(tasks, day, "x1", "t1")
		assert.Equal(t, tasks, result)
	})
}

func TestApplyRanking(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)

	t.Run("ascending rank becomes ascending position", func(t *testing.T) {
		tasks := reorderFixture(day)
		// today order [A B C]; rank B above A, C unranked
		result := ApplyRanking(tasks, day, map[string]int{"A": 2, "B": 1})

		today, other := Partition(result, day)
		assert.Equal(t, []string{"B", "A", "C"}, taskNames(today))
		assert.Equal(t, []string{"X", "Y"}, taskNames(other))
	})

	t.Run("unranked tasks keep relative order after ranked", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: "1", Name: "p"},
			{ID: "2", Name: "q"},
			{ID: "3", Name: "r"},
			{ID: "4", Name: "s"},
		}
		result := ApplyRanking(tasks, day, map[string]int{"s": 1})
		assert.Equal(t, []string{"s", "p", "q", "r"}, taskNames(result))
	})

	t.Run("already ordered input is unchanged", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := ApplyRanking(tasks, day, map[string]int{"A": 1, "B": 2})

		today, _ := Partition(result, day)
		assert.Equal(t, []string{"A", "B", "C"}, taskNames(today))
	})

	t.Run("ranks naming no task are ignored", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := ApplyRanking(tasks, day, map[string]int{"nonexistent": 1})

		today, _ := Partition(result, day)
		assert.Equal(t, []string{"A", "B", "C"}, taskNames(today))
	})

	t.Run("duplicate ranks keep stable order", func(t *testing.T) {
		tasks := reorderFixture(day)
		result := ApplyRanking(tasks, day, map[string]int{"A": 1, "B": 1, "C": 1})

		today, _ := Partition(result, day)
		assert.Equal(t, []string{"A", "B", "C"}, taskNames(today))
	})
}

func TestRankIndex(t *testing.T) {
	suggestions := []domain.RankedTask{
		{Name: "A", Priority: 2, Reason: "can wait"},
		{Name: "B", Priority: 1, Reason: "urgent"},
		{Name: "A", Priority: 5},
	}

	ranks := RankIndex(suggestions)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, ranks)
}
