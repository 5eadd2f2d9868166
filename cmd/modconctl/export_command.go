package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modcon/internal/domain"
	"modcon/internal/export"
	"modcon/internal/feed"
	"modcon/internal/storage"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		platforms    []string
		campaign     string
		rowsPath     string
		feedRowsPath string
		rulesPath    string
		outDir       string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render export rows into platform feed files",
		Long: "Render export rows into platform feed files. One platform prints or writes a single file;\n" +
			"several platforms are bundled into one zip archive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rowsPath == "" && feedRowsPath == "" {
				return fmt.Errorf("one of --rows or --feed-rows is required")
			}
			req := export.Request{CampaignName: campaign}
			if rowsPath != "" {
				if err := readJSONFile(rowsPath, &req.Rows); err != nil {
					return err
				}
			}
			if feedRowsPath != "" {
				var feedRows []domain.FeedRow
				if err := readJSONFile(feedRowsPath, &feedRows); err != nil {
					return err
				}
				req.Rows = append(req.Rows, feed.ToExportRows(feedRows, feed.ConvertOptions{})...)
			}
			if rulesPath != "" {
				if err := readJSONFile(rulesPath, &req.Rules); err != nil {
					return err
				}
			}

			gen := export.NewGenerator(nil, ctx.logger())
			var store *storage.FileStore
			if outDir != "" {
				var err error
				if store, err = storage.NewFileStore(outDir); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()

			if len(platforms) == 1 {
				req.Platform = platforms[0]
				res, err := gen.Generate(cmd.Context(), req)
				if err != nil {
					return err
				}
				for _, msg := range append(res.ValidationErrors, res.Warnings...) {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				if store == nil {
					if ctx.wantJSON() {
						return writeJSON(cmd, res)
					}
					_, err = fmt.Fprint(out, res.Content)
					return err
				}
				key, err := store.Write(cmd.Context(), res.Filename, []byte(res.Content))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s (%d rows)\n", key, res.RowCount)
				return nil
			}

			if store == nil {
				return fmt.Errorf("--out is required when exporting %d platforms", len(platforms))
			}
			archive, results, err := gen.Bundle(cmd.Context(), req, platforms)
			if err != nil {
				return err
			}
			name := strings.ReplaceAll(campaign, " ", "_") + "_feeds.zip"
			key, err := store.Write(cmd.Context(), name, archive)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s (%d platforms)\n", key, len(results))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&platforms, "platform", nil, "Target platform (repeatable or comma separated)")
	cmd.Flags().StringVar(&campaign, "campaign", "campaign", "Campaign name used in file names")
	cmd.Flags().StringVar(&rowsPath, "rows", "", "JSON file with export rows")
	cmd.Flags().StringVar(&feedRowsPath, "feed-rows", "", "JSON file with feed rows to convert")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "JSON file with decisioning rules")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory to write files into")
	_ = cmd.MarkFlagRequired("platform")
	return cmd
}
