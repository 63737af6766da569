package schedule

import (
	"sort"
	"time"

	"github.com/sudsywork/sudsy/internal/model"
)

// Filter returns the jobs visible under the given window mode and search
// term, ordered by date then start time. The input slice is treated as
// immutable; the result is always a fresh slice.
func Filter(jobs []model.Job, now time.Time, mode model.WindowMode, term string) []model.Job {
	visible := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if !InWindow(job.Date.Time(), now, mode) {
			continue
		}
		if !MatchesSearch(job, term) {
			continue
		}
		visible = append(visible, job)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		di, dj := visible[i].Date.Time(), visible[j].Date.Time()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return visible[i].Start < visible[j].Start
	})

	return visible
}
