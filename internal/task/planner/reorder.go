package planner

import (
	"math"
	"sort"
	"time"

	"dayplan-backend/internal/task/domain"
)

// Move relocates the element at sourceIndex of the day-bound
// subsequence of tasks so that it sits at targetIndex, shifting the
// elements in between by one. Indices address the day subsequence, not
// the full collection. Tasks outside the day partition keep their
// content and relative order; the result is other ++ reorderedToday.
// If either index cannot be resolved the move is dropped and the input
// order is returned unchanged.
func Move(tasks []domain.Task, day time.Time, sourceIndex, targetIndex int) []domain.Task {
	today, other := Partition(tasks, day)
	if sourceIndex < 0 || sourceIndex >= len(today) || targetIndex < 0 || targetIndex >= len(today) {
		return append([]domain.Task(nil), tasks...)
	}
	reordered := arrayMove(today, sourceIndex, targetIndex)
	return append(other, reordered...)
}

// MoveByID resolves a drag gesture expressed as (dragged task id,
// task id it was dropped on) against the day subsequence and applies
// Move. Unknown ids make the move a no-op.
func MoveByID(tasks []domain.Task, day time.Time, activeID, overID string) []domain.Task {
	today, _ := Partition(tasks, day)
	src, dst := -1, -1
	for i, t := range today {
		if t.ID == activeID {
			src = i
		}
		if t.ID == overID {
			dst = i
		}
	}
	return Move(tasks, day, src, dst)
}

// ApplyRanking reorders the day-bound subsequence so that ascending
// suggested rank becomes ascending position. Tasks whose name carries
// no rank sort after every ranked task, keeping their relative order
// (stable sort with +Inf as the missing key). Ranks joined by name:
// two tasks sharing a name are indistinguishable to the suggestion
// source, which is a known limitation of the collaborator contract.
func ApplyRanking(tasks []domain.Task, day time.Time, ranks map[string]int) []domain.Task {
	today, other := Partition(tasks, day)
	sorted := append([]domain.Task(nil), today...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOf(sorted[i].Name, ranks) < rankOf(sorted[j].Name, ranks)
	})
	return append(other, sorted...)
}

// RankIndex collapses a suggestion list into a name -> rank map.
// Duplicate names keep the best (lowest) rank.
func RankIndex(suggestions []domain.RankedTask) map[string]int {
	ranks := make(map[string]int, len(suggestions))
	for _, s := range suggestions {
		if cur, ok := ranks[s.Name]; !ok || s.Priority < cur {
			ranks[s.Name] = s.Priority
		}
	}
	return ranks
}

func rankOf(name string, ranks map[string]int) float64 {
	if r, ok := ranks[name]; ok {
		return float64(r)
	}
	return math.Inf(1)
}

// arrayMove returns a copy of items with the element at from relocated
// to index to. A single-element relocation, not a swap.
func arrayMove(items []domain.Task, from, to int) []domain.Task {
	out := append([]domain.Task(nil), items...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.Task{moved}, out[to:]...)...)
	return out
}
