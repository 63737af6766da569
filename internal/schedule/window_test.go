package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sudsywork/sudsy/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestInWindow_Today(t *testing.T) {
	// 1am, so the prior calendar day is within 24 hours but still excluded.
	now := time.Date(2025, time.March, 12, 1, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		jobDate time.Time
		want    bool
	}{
		{
			name:    "job at local midnight of today included",
			jobDate: date(2025, time.March, 12),
			want:    true,
		},
		{
			name:    "prior calendar day excluded even within 24h",
			jobDate: date(2025, time.March, 11),
			want:    false,
		},
		{
			name:    "next day excluded",
			jobDate: date(2025, time.March, 13),
			want:    false,
		},
		{
			name:    "zero date excluded",
			jobDate: time.Time{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InWindow(tt.jobDate, now, model.WindowToday))
		})
	}
}

// Pinned to a fixed reference date so the Sunday-aligned week semantics
// cannot silently drift to a rolling seven-day window.
func TestInWindow_ThisWeek_SundayAligned(t *testing.T) {
	// Wednesday, March 12, 2025. Week runs Sunday March 9 (inclusive)
	// through Sunday March 16 (exclusive).
	now := time.Date(2025, time.March, 12, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		jobDate time.Time
		want    bool
	}{
		{
			name:    "preceding Sunday included",
			jobDate: date(2025, time.March, 9),
			want:    true,
		},
		{
			name:    "today included",
			jobDate: date(2025, time.March, 12),
			want:    true,
		},
		{
			name:    "Saturday included",
			jobDate: date(2025, time.March, 15),
			want:    true,
		},
		{
			name:    "following Sunday excluded (exclusive upper bound)",
			jobDate: date(2025, time.March, 16),
			want:    false,
		},
		{
			name:    "day before week start excluded",
			jobDate: date(2025, time.March, 8),
			want:    false,
		},
		{
			name:    "zero date excluded",
			jobDate: time.Time{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InWindow(tt.jobDate, now, model.WindowThisWeek))
		})
	}
}

func TestInWindow_WeekWhenNowIsSunday(t *testing.T) {
	// Sunday itself starts a fresh week.
	now := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.Local)

	assert.True(t, InWindow(date(2025, time.March, 9), now, model.WindowThisWeek))
	assert.True(t, InWindow(date(2025, time.March, 15), now, model.WindowThisWeek))
	assert.False(t, InWindow(date(2025, time.March, 8), now, model.WindowThisWeek))
	assert.False(t, InWindow(date(2025, time.March, 16), now, model.WindowThisWeek))
}

func TestInWindow_All(t *testing.T) {
	now := time.Date(2025, time.March, 12, 14, 30, 0, 0, time.Local)

	assert.True(t, InWindow(date(1999, time.January, 1), now, model.WindowAll))
	assert.True(t, InWindow(date(2030, time.December, 31), now, model.WindowAll))
	// Undated jobs still show when no date filter is active.
	assert.True(t, InWindow(time.Time{}, now, model.WindowAll))
}
