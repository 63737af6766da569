package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sudsywork/sudsy/internal/checklist"
	"github.com/sudsywork/sudsy/internal/classify"
	"github.com/sudsywork/sudsy/internal/cli"
)

func checklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist <service or title>",
		Short: "Print the checklist for a service type",
		Long: `Classify the given text the same way a job title would be classified and
print the resulting checklist. Useful for previewing what a crew will see:

  sudsy checklist "airbnb turnover"
  sudsy checklist deep
  sudsy checklist "Move out - 42 Lakeview Dr"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			tag := classify.Classify(text)
			tmpl := checklist.Resolve(tag)

			fmt.Print(cli.RenderTemplate(tmpl))
			return nil
		},
	}
}
