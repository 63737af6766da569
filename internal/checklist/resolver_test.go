package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudsywork/sudsy/internal/model"
)

func TestResolve_TotalOverAllTags(t *testing.T) {
	for _, tag := range model.AllServiceTags {
		t.Run(string(tag), func(t *testing.T) {
			tmpl := Resolve(tag)

			assert.Equal(t, tag, tmpl.Tag)
			require.NotEmpty(t, tmpl.Sections)
			for _, section := range tmpl.Sections {
				assert.NotEmpty(t, section.Label)
				assert.NotEmpty(t, section.Items)
			}
		})
	}
}

func TestResolve_ArrivalAndWrapUpBracketWork(t *testing.T) {
	for _, tag := range model.AllServiceTags {
		t.Run(string(tag), func(t *testing.T) {
			tmpl := Resolve(tag)
			require.GreaterOrEqual(t, len(tmpl.Sections), 2)

			first := tmpl.Sections[0].Label
			last := tmpl.Sections[len(tmpl.Sections)-1].Label
			assert.Contains(t, first, "Arrival")
			assert.Contains(t, last, "Wrap-Up")
		})
	}
}

func TestResolve_PhotoStepsWhereRequired(t *testing.T) {
	// Photo documentation is proof of work for hosts and clients on
	// turnovers, move in/out cleans, and one-time cleans.
	photoTags := []model.ServiceTag{
		model.TagAirbnbTurnover,
		model.TagMoveInOut,
		model.TagOneTime,
	}

	for _, tag := range photoTags {
		t.Run(string(tag), func(t *testing.T) {
			tmpl := Resolve(tag)

			var hasBefore, hasAfter bool
			for _, section := range tmpl.Sections {
				for _, item := range section.Items {
					lowered := strings.ToLower(item)
					if strings.Contains(lowered, "before photos") {
						hasBefore = true
					}
					if strings.Contains(lowered, "after photos") {
						hasAfter = true
					}
				}
			}

			assert.True(t, hasBefore, "template should call out before photos")
			assert.True(t, hasAfter, "template should call out after photos")
		})
	}
}

func TestResolve_UnknownTagFallsBackToStandard(t *testing.T) {
	tmpl := Resolve(model.ServiceTag("NotARealTag"))
	assert.Equal(t, model.TagStandard, tmpl.Tag)
	assert.NotEmpty(t, tmpl.Sections)
}

func TestResolve_Idempotent(t *testing.T) {
	first := Resolve(model.TagAirbnbTurnover)
	second := Resolve(model.TagAirbnbTurnover)
	assert.Equal(t, first, second)
}
