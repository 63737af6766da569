package schedule

import (
	"strings"

	"github.com/sudsywork/sudsy/internal/model"
)

// MatchesSearch reports whether a job matches a free-text search term.
// Matching is case-insensitive substring containment with OR semantics
// across client, address, title, and notes. An empty term matches
// everything.
func MatchesSearch(job model.Job, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	fields := []string{job.Client, job.Address, job.Title, job.Notes}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}
