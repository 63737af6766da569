package model

import "fmt"

// WindowMode selects the date-range predicate applied to the job list.
type WindowMode int

const (
	// WindowToday shows only jobs on the current calendar day.
	WindowToday WindowMode = iota
	// WindowThisWeek shows jobs in the Sunday-aligned week containing now.
	WindowThisWeek
	// WindowAll disables date filtering.
	WindowAll
)

// String returns the flag spelling of the mode.
func (m WindowMode) String() string {
	switch m {
	case WindowToday:
		return "today"
	case WindowThisWeek:
		return "week"
	case WindowAll:
		return "all"
	default:
		return fmt.Sprintf("WindowMode(%d)", int(m))
	}
}

// ParseWindowMode converts a flag value into a WindowMode.
func ParseWindowMode(s string) (WindowMode, error) {
	switch s {
	case "today":
		return WindowToday, nil
	case "week", "this-week":
		return WindowThisWeek, nil
	case "all":
		return WindowAll, nil
	default:
		return WindowToday, fmt.Errorf("invalid window mode: %q (expected today, week, or all)", s)
	}
}
