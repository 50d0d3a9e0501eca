// Package timeline turns a day's appointments and deadline-bearing
// tasks into a positioned single-day schedule: each visible item gets
// a vertical offset and extent in layout units derived purely from its
// timestamps.
package timeline

import "time"

const (
	// HourHeight is the number of layout units per hour.
	HourHeight = 60.0

	// MinVisibleExtent is the floor applied to an item's rendered
	// extent so zero or inverted ranges stay visible.
	MinVisibleExtent = 30.0
)

// Position converts an absolute time to a vertical offset relative to
// a window starting at startHour. The time of day is read in the local
// zone, matching the local-day window. Negative when t precedes the
// window; callers decide whether to clip.
func Position(t time.Time, startHour int) float64 {
	local := t.In(time.Local)
	return (float64(local.Hour()) - float64(startHour) + float64(local.Minute())/60.0) * HourHeight
}

// Extent converts a time range to a vertical extent. An inverted range
// (end before start) yields a non-positive value, left to the caller
// to clamp.
func Extent(start, end time.Time) float64 {
	minutes := end.Sub(start).Minutes()
	return minutes / 60.0 * HourHeight
}
