package checklist

import "github.com/sudsywork/sudsy/internal/model"

// Resolve returns the checklist template for a service tag. Lookup never
// fails: a tag with no entry falls back to the standard template so the
// crew always gets a usable checklist.
func Resolve(tag model.ServiceTag) model.Template {
	if tmpl, ok := templates[tag]; ok {
		return tmpl
	}
	return templates[model.TagStandard]
}
