package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sudsywork/sudsy/internal/classify"
	"github.com/sudsywork/sudsy/internal/cli"
	"github.com/sudsywork/sudsy/internal/model"
)

func jobsCmd() *cobra.Command {
	flags := &viewFlags{}
	var showNotes bool

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List scheduled cleaning jobs",
		Long: `Fetch the crew's scheduled jobs and list them filtered by date window
and free-text search. Each job shows the service type it was classified as.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			visible, err := visibleJobs(cmd.Context(), flags)
			if err != nil {
				return err
			}

			if len(visible) == 0 {
				fmt.Println(cli.InfoStyle.Render("No jobs found."))
				return nil
			}

			mode, _ := flags.windowMode()
			fmt.Println(cli.TitleStyle.Render(jobsHeading(mode, len(visible))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("#"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Time"),
				cli.BoldStyle.Render("Client"),
				cli.BoldStyle.Render("Service"))

			for i, job := range visible {
				tag := classify.ClassifyJob(job)

				dateStr := ""
				if !job.Date.IsZero() {
					dateStr = job.Date.Format("Mon Jan 2")
				}

				client := job.Client
				if client == "" {
					client = cli.SubtleStyle.Render("(no client)")
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i+1, dateStr, job.TimeRange(), client,
					cli.TagStyle.Render(tag.DisplayName()))

				if job.Address != "" {
					fmt.Fprintf(w, "\t%s\t\t\t\n", cli.SubtleStyle.Render(job.Address))
				}
				if showNotes && job.Notes != "" {
					for _, line := range strings.Split(job.Notes, "\n") {
						fmt.Fprintf(w, "\t%s\t\t\t\n", cli.SubtleStyle.Render(line))
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.window, "window", "today", "date window (today, week, all)")
	cmd.Flags().StringVar(&flags.search, "search", "", "filter jobs by client, address, title, or notes")
	cmd.Flags().StringVar(&flags.date, "date", "", "override today's date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.offline, "offline", false, "read jobs from the local snapshot instead of fetching")
	cmd.Flags().BoolVar(&showNotes, "notes", false, "show job notes")

	return cmd
}

func jobsHeading(mode model.WindowMode, count int) string {
	label := map[model.WindowMode]string{
		model.WindowToday:    "Today",
		model.WindowThisWeek: "This Week",
		model.WindowAll:      "All Jobs",
	}[mode]
	return fmt.Sprintf("%s (%d)", label, count)
}
