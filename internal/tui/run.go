package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sudsywork/sudsy/internal/model"
)

// RunChecklist opens the interactive checklist for a job and blocks until
// the crew quits it. The ticked state is discarded on exit.
func RunChecklist(ctx context.Context, job model.Job, tag model.ServiceTag, tmpl model.Template) error {
	program := tea.NewProgram(
		NewModel(job, tag, tmpl),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("checklist session failed: %w", err)
	}

	return nil
}
