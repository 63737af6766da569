// Package classify maps free-form job descriptions to canonical service tags.
package classify

import (
	"strings"

	"github.com/sudsywork/sudsy/internal/model"
)

// rule pairs a service tag with the keywords that select it. Matching is
// raw substring containment on the lowered input, no word boundaries; a
// title containing "deepwater" will match the deep-clean keyword. That is
// observed behavior in how the office titles jobs and is kept on purpose.
type rule struct {
	tag      model.ServiceTag
	keywords []string
}

// rules is evaluated in order and the first match wins. Order matters:
// "Airbnb Deep Clean" must resolve to a turnover, not a deep clean, so the
// turnover rule sits above the deep-clean rule.
var rules = []rule{
	{model.TagAirbnbTurnover, []string{"airbnb", "turnover", "bnb"}},
	{model.TagPostConstruction, []string{"construction"}},
	{model.TagMoveInOut, []string{"move-in", "move in", "move out", "move-out"}},
	{model.TagListingPrep, []string{"listing", "real estate"}},
	{model.TagOfficeCommercial, []string{"office", "commercial"}},
	{model.TagOneTime, []string{"one time", "one-time"}},
	{model.TagDeepClean, []string{"deep"}},
}

// Classify resolves free-form service text to a service tag. It is total:
// empty or unrecognized input falls through to the standard clean. It never
// fails and holds no state, so callers may re-run it freely.
func Classify(text string) model.ServiceTag {
	lowered := strings.ToLower(text)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.tag
			}
		}
	}

	return model.TagStandard
}

// ClassifyJob classifies a job using its preferred source field
// (service_type over title, per Job.ClassificationSource).
func ClassifyJob(job model.Job) model.ServiceTag {
	return Classify(job.ClassificationSource())
}
