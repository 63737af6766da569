package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/sudsywork/sudsy/internal/checklist"
	"github.com/sudsywork/sudsy/internal/classify"
	"github.com/sudsywork/sudsy/internal/cli"
	"github.com/sudsywork/sudsy/internal/config"
	"github.com/sudsywork/sudsy/internal/service"
	"github.com/sudsywork/sudsy/internal/sheets"
)

func exportCmd() *cobra.Command {
	flags := &viewFlags{window: "week"}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule to Google Sheets",
		Long: `Classify the visible jobs and write them to the office's Google Sheet,
one row per job with its service type and checklist size. Defaults to the
current week.

Requires Google Sheets credentials; see 'sudsy auth'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			visible, err := visibleJobs(ctx, flags)
			if err != nil {
				return err
			}
			if len(visible) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to export."))
				return nil
			}

			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets not configured: %w", err)
			}

			writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(visible),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Preparing schedule...[reset]"),
			)

			rows := make([]service.ScheduleRow, 0, len(visible))
			for _, job := range visible {
				tag := classify.ClassifyJob(job)
				rows = append(rows, service.ScheduleRow{
					Job:            job,
					Tag:            tag,
					ChecklistItems: checklist.Resolve(tag).ItemCount(),
				})
				_ = bar.Add(1)
			}
			fmt.Println()

			if err := writer.Export(ctx, rows); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported %d job(s)", len(rows))))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.window, "window", "week", "date window (today, week, all)")
	cmd.Flags().StringVar(&flags.search, "search", "", "filter jobs by client, address, title, or notes")
	cmd.Flags().StringVar(&flags.date, "date", "", "override today's date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.offline, "offline", false, "read jobs from the local snapshot instead of fetching")

	return cmd
}
