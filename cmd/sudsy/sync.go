package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sudsywork/sudsy/internal/cli"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Save the current job list for offline use",
		Long: `Fetch the scheduled jobs and write them to the local snapshot cache so
'sudsy jobs --offline' and 'sudsy run --offline' work without signal.
Unlike the display commands, a fetch failure here is an error.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := newSourceClient()
			if err != nil {
				return err
			}

			jobs, err := client.FetchJobs(ctx)
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveSnapshot(ctx, jobs, time.Now()); err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved %d job(s) to the offline snapshot", len(jobs))))
			return nil
		},
	}
}
