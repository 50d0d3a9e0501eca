package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare array",
			in:   `[{"name":"a"}]`,
			want: `[{"name":"a"}]`,
		},
		{
			name: "markdown fenced",
			in:   "Here you go:\n```json\n[{\"name\":\"a\"}]\n```\nHope this helps!",
			want: `[{"name":"a"}]`,
		},
		{
			name: "leading and trailing prose",
			in:   `Sure! The result is [1, 2, 3] as requested.`,
			want: `[1, 2, 3]`,
		},
		{
			name: "no array returns input",
			in:   "I could not produce a ranking.",
			want: "I could not produce a ranking.",
		},
		{
			name: "whitespace trimmed",
			in:   "  [1]  ",
			want: "[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONArray(tt.in))
		})
	}
}

func TestPrioritizePrompt(t *testing.T) {
	prompt := PrioritizePrompt([]TaskInfo{
		{Name: "Write report", Description: "Q2 numbers", Deadline: "2024-05-15T09:00:00Z", Importance: "high"},
		{Name: "Email client", Importance: "medium"},
	})

	assert.Contains(t, prompt, "Write report")
	assert.Contains(t, prompt, "Q2 numbers")
	assert.Contains(t, prompt, "Email client")
	assert.Contains(t, prompt, "ONLY a JSON array")
}

func TestTimeBlocksPrompt(t *testing.T) {
	duration := 45
	prompt := TimeBlocksPrompt(TimeBlockRequest{
		Tasks: []BlockTask{
			{Name: "Write report", Duration: &duration, Priority: "high"},
			{Name: "Email client"},
		},
		ExistingAppointments: []BlockSpan{
			{StartTime: "2024-05-15T09:00:00Z", EndTime: "2024-05-15T09:30:00Z"},
		},
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "18:00",
	})

	assert.Contains(t, prompt, "45 minutes")
	assert.Contains(t, prompt, "Not specified")
	assert.Contains(t, prompt, "From: 2024-05-15T09:00:00Z")
	assert.Contains(t, prompt, "from 09:00 to 18:00")
}

func TestChatPrompt(t *testing.T) {
	t.Run("includes the task snapshot", func(t *testing.T) {
		prompt := ChatPrompt("what should I do first?", []ChatTask{
			{Name: "Write report", Priority: "high", Status: "todo"},
		})
		assert.Contains(t, prompt, "Write report")
		assert.Contains(t, prompt, "what should I do first?")
	})

	t.Run("marks an empty task list", func(t *testing.T) {
		prompt := ChatPrompt("hello", nil)
		assert.Contains(t, prompt, "(none)")
	})
}
