package ai

import (
	"fmt"
	"strings"
)

// Prompt builders shared by all providers so that Gemini and Ollama
// answer the same questions in the same shape.

// PrioritizePrompt asks for a JSON array of {name, priority, reason}
// with 1 as the highest priority.
func PrioritizePrompt(tasks []TaskInfo) string {
	var b strings.Builder
	b.WriteString(`You are an AI task prioritization expert. Analyze the following tasks and suggest a priority for each, with 1 being the highest priority. Provide a brief reason for each priority assignment.

Tasks:
`)
	for _, t := range tasks {
		fmt.Fprintf(&b, "- Name: %s\n  Description: %s\n  Deadline: %s\n  Importance: %s\n", t.Name, t.Description, t.Deadline, t.Importance)
	}
	b.WriteString(`
Return ONLY a JSON array, no other text:
[{"name": "...", "priority": 1, "reason": "..."}]`)
	return b.String()
}

// TimeBlocksPrompt asks for suggested calendar placements around
// existing appointments inside the working-hours window.
func TimeBlocksPrompt(req TimeBlockRequest) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant that helps users schedule their tasks in a calendar.\n\nGiven the following list of tasks with their durations, deadlines and priorities:\n")
	for _, t := range req.Tasks {
		duration := "Not specified"
		if t.Duration != nil {
			duration = fmt.Sprintf("%d minutes", *t.Duration)
		}
		fmt.Fprintf(&b, "- Task: %s, Duration: %s, Deadline: %s, Priority: %s\n", t.Name, duration, t.Deadline, t.Priority)
	}
	b.WriteString("\nAnd the following existing appointments in the calendar:\n")
	for _, a := range req.ExistingAppointments {
		fmt.Fprintf(&b, "- From: %s to: %s\n", a.StartTime, a.EndTime)
	}
	fmt.Fprintf(&b, `
Considering that the working hours are from %s to %s, suggest time blocks for each task.
If a task does not have a duration, assume a default duration of 30 minutes.
Optimize the schedule around the existing appointments and try to meet the deadlines and priorities of the tasks.
Make sure that the suggested time blocks do not overlap with existing appointments or exceed working hours.

Return ONLY a JSON array, no other text, times in ISO-8601:
[{"task_name": "...", "start_time": "2024-01-01T09:00:00Z", "end_time": "2024-01-01T10:00:00Z"}]`, req.WorkingHoursStart, req.WorkingHoursEnd)
	return b.String()
}

// ChatPrompt wraps a free-text user message with the task snapshot.
func ChatPrompt(message string, tasks []ChatTask) string {
	var b strings.Builder
	b.WriteString("You are a friendly productivity assistant. Answer the user's question, using their current task list as context when relevant. Keep answers short and practical.\n\nCurrent tasks:\n")
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
	}
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s (priority: %s, status: %s, deadline: %s)\n", t.Name, t.Priority, t.Status, t.Deadline)
	}
	b.WriteString("\nUser message:\n")
	b.WriteString(message)
	return b.String()
}

// ExtractJSONArray trims any prose the model wraps around a JSON array.
func ExtractJSONArray(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}
	return text
}
