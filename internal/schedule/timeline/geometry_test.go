package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 15, hour, min, 0, 0, time.Local)
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name      string
		t         time.Time
		startHour int
		want      float64
	}{
		{"window start", at(8, 0), 8, 0},
		{"one hour in", at(9, 0), 8, 60},
		{"half hour in", at(8, 30), 8, 30},
		{"before window is negative", at(7, 0), 8, -60},
		{"midnight window", at(14, 15), 0, 855},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Position(tt.t, tt.startHour), 0.001)
		})
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       float64
	}{
		{"one hour", at(9, 0), at(10, 0), 60},
		{"thirty minutes", at(9, 0), at(9, 30), 30},
		{"zero duration", at(9, 0), at(9, 0), 0},
		{"inverted range is negative", at(10, 0), at(9, 0), -60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Extent(tt.start, tt.end), 0.001)
		})
	}
}
