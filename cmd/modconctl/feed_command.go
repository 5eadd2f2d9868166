package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modcon/internal/feed"
	"modcon/internal/fieldalias"
)

func newFeedCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Generate and validate DCO feeds",
	}
	cmd.AddCommand(newFeedValidateCommand(ctx))
	cmd.AddCommand(newFeedGenerateCommand(ctx))
	return cmd
}

func newFeedValidateCommand(ctx *commandContext) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "validate <rows.json|->",
		Short: "Check feed rows against a platform's limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []fieldalias.Record
			if err := readJSONFile(args[0], &rows); err != nil {
				return err
			}
			res := feed.Validate(rows, platform)
			if ctx.wantJSON() {
				if err := writeJSON(cmd, res); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if len(res.Issues) > 0 {
					lines := make([][]string, 0, len(res.Issues))
					for _, issue := range res.Issues {
						lines = append(lines, []string{issue.RowID, issue.Field, string(issue.Severity), issue.Message})
					}
					fmt.Fprintln(out, renderTable([]string{"Row", "Field", "Severity", "Message"}, lines, nil))
				}
				fmt.Fprintln(out, res.Summary)
			}
			if !res.IsValid {
				return fmt.Errorf("feed is not valid for %s", platform)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "flashtalking", "Target platform")
	return cmd
}

func newFeedGenerateCommand(ctx *commandContext) *cobra.Command {
	var geo string
	var asExport bool
	cmd := &cobra.Command{
		Use:   "generate <input.json|->",
		Short: "Assemble feed rows from audience strategy, assets and media plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in feed.Input
			if err := readJSONFile(args[0], &in); err != nil {
				return err
			}
			rows := feed.Generate(in, feed.GenerateOptions{DefaultGeo: geo})
			if asExport {
				return writeJSON(cmd, feed.ToExportRows(rows, feed.ConvertOptions{}))
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, rows)
			}
			lines := make([][]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, []string{r.CreativeFilename, r.AudienceID, r.PlatformID, r.PlacementDimension, r.GeoTargeting})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Creative", "Audience", "Platform", "Placement", "Geo"}, lines, nil))
			return nil
		},
	}
	cmd.Flags().StringVar(&geo, "geo", "", "Geo targeting for rows that carry none")
	cmd.Flags().BoolVar(&asExport, "export-rows", false, "Print module-based export rows instead of feed rows")
	return cmd
}
