package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sudsywork/sudsy/internal/checklist"
	"github.com/sudsywork/sudsy/internal/classify"
	"github.com/sudsywork/sudsy/internal/tui"
)

func runCmd() *cobra.Command {
	flags := &viewFlags{}
	var jobIndex int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Work through a job's checklist interactively",
		Long: `Open the interactive checklist for one of the currently visible jobs.
The job is picked by its number in the 'sudsy jobs' listing for the same
window and search flags. Ticked boxes last only for the session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			visible, err := visibleJobs(cmd.Context(), flags)
			if err != nil {
				return err
			}

			if len(visible) == 0 {
				return fmt.Errorf("no jobs found for the given window and search")
			}
			if jobIndex < 1 || jobIndex > len(visible) {
				return fmt.Errorf("--job %d out of range: %d job(s) visible", jobIndex, len(visible))
			}

			job := visible[jobIndex-1]
			tag := classify.ClassifyJob(job)
			tmpl := checklist.Resolve(tag)

			return tui.RunChecklist(cmd.Context(), job, tag, tmpl)
		},
	}

	cmd.Flags().StringVar(&flags.window, "window", "today", "date window (today, week, all)")
	cmd.Flags().StringVar(&flags.search, "search", "", "filter jobs by client, address, title, or notes")
	cmd.Flags().StringVar(&flags.date, "date", "", "override today's date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.offline, "offline", false, "read jobs from the local snapshot instead of fetching")
	cmd.Flags().IntVar(&jobIndex, "job", 1, "job number from the listing")

	return cmd
}
