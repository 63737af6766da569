package model

// Section is one labeled group of checklist items. Item order within a
// section is the order the crew works through them.
type Section struct {
	Label string
	Items []string
}

// Template is the ordered set of sections rendered as a job's checklist.
// Templates are static data, versioned only by code change; nothing mutates
// a template after process start.
type Template struct {
	Tag      ServiceTag
	Sections []Section
}

// ItemCount returns the total number of items across all sections.
func (t Template) ItemCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Items)
	}
	return n
}
