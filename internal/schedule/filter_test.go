package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudsywork/sudsy/internal/model"
)

func TestMatchesSearch(t *testing.T) {
	job := model.Job{
		Client:  "Smith Family",
		Address: "42 Lakeview Dr",
		Title:   "Deep Clean",
		Notes:   "Gate code 4411",
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term matches", term: "", want: true},
		{name: "whitespace-only term matches", term: "   ", want: true},
		{name: "client match case-insensitive", term: "smith", want: true},
		{name: "address match", term: "lakeview", want: true},
		{name: "title match", term: "deep", want: true},
		{name: "notes match", term: "gate code", want: true},
		{name: "no field matches", term: "johnson", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(job, tt.term))
		})
	}
}

func TestFilter_TodayWindowEndToEnd(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local)

	today := model.Job{
		Title: "Airbnb Turnover",
		Date:  model.Date(date(2025, time.March, 12)),
	}
	nextWeek := model.Job{
		Title: "Standard Clean",
		Date:  model.Date(date(2025, time.March, 20)), // 8 days out
	}

	visible := Filter([]model.Job{today, nextWeek}, now, model.WindowToday, "")

	require.Len(t, visible, 1)
	assert.Equal(t, "Airbnb Turnover", visible[0].Title)
}

func TestFilter_SearchComposesWithWindow(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local)

	smith := model.Job{
		Client: "Smith Family",
		Date:   model.Date(date(2025, time.March, 12)),
	}
	jones := model.Job{
		Client: "Jones Household",
		Date:   model.Date(date(2025, time.March, 12)),
	}

	for _, mode := range []model.WindowMode{model.WindowToday, model.WindowThisWeek, model.WindowAll} {
		t.Run(mode.String(), func(t *testing.T) {
			visible := Filter([]model.Job{smith, jones}, now, mode, "smith")
			require.Len(t, visible, 1)
			assert.Equal(t, "Smith Family", visible[0].Client)
		})
	}
}

func TestFilter_SortsByDateThenStart(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local)

	jobs := []model.Job{
		{Client: "C", Date: model.Date(date(2025, time.March, 14))},
		{Client: "B", Date: model.Date(date(2025, time.March, 12)), Start: "13:00"},
		{Client: "A", Date: model.Date(date(2025, time.March, 12)), Start: "09:00"},
	}

	visible := Filter(jobs, now, model.WindowThisWeek, "")

	require.Len(t, visible, 3)
	assert.Equal(t, "A", visible[0].Client)
	assert.Equal(t, "B", visible[1].Client)
	assert.Equal(t, "C", visible[2].Client)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local)

	jobs := []model.Job{
		{Client: "B", Date: model.Date(date(2025, time.March, 13))},
		{Client: "A", Date: model.Date(date(2025, time.March, 12))},
	}

	_ = Filter(jobs, now, model.WindowThisWeek, "")

	assert.Equal(t, "B", jobs[0].Client)
	assert.Equal(t, "A", jobs[1].Client)
}

func TestFilter_EmptyInput(t *testing.T) {
	now := time.Now()
	assert.Empty(t, Filter(nil, now, model.WindowAll, ""))
	assert.Empty(t, Filter([]model.Job{}, now, model.WindowToday, "smith"))
}
