package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modcon/internal/domain"
)

func newSpecsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specs",
		Short: "Inspect and extend the platform spec library",
	}
	cmd.AddCommand(newSpecsListCommand(ctx))
	cmd.AddCommand(newSpecsShowCommand(ctx))
	cmd.AddCommand(newSpecsAddCommand(ctx))
	cmd.AddCommand(newSpecsConstraintsCommand(ctx))
	return cmd
}

func newSpecsListCommand(ctx *commandContext) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog and custom specs",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			specs, err := lib.All(cmd.Context())
			if err != nil {
				return err
			}
			filtered := make([]domain.Spec, 0, len(specs))
			for _, s := range specs {
				if platform == "" || strings.EqualFold(s.Platform, platform) {
					filtered = append(filtered, s)
				}
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, filtered)
			}
			rows := make([][]string, 0, len(filtered))
			for _, s := range filtered {
				maxDur := 0
				if s.MaxDurationSeconds != nil {
					maxDur = *s.MaxDurationSeconds
				}
				rows = append(rows, []string{s.ID, s.Platform, s.Placement, s.DimensionLabel(), s.MediaType, itoa(maxDur), string(s.Source)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Platform", "Placement", "Dimensions", "Media", "Max Sec", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "Only show specs for this platform")
	return cmd
}

func newSpecsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Resolve one spec ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			spec, err := lib.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, spec)
		},
	}
}

func newSpecsAddCommand(ctx *commandContext) *cobra.Command {
	var spec domain.Spec
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a custom spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			saved, err := lib.SaveCustom(cmd.Context(), spec)
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", saved.ID, saved.DimensionLabel())
			return nil
		},
	}
	cmd.Flags().StringVar(&spec.Platform, "platform", "", "Platform name (required)")
	cmd.Flags().StringVar(&spec.Placement, "placement", "", "Placement name (required)")
	cmd.Flags().IntVar(&spec.Width, "width", 0, "Width in pixels")
	cmd.Flags().IntVar(&spec.Height, "height", 0, "Height in pixels")
	cmd.Flags().StringVar(&spec.MediaType, "media-type", "image", "image, video or image_or_video")
	cmd.Flags().StringVar(&spec.FileType, "file-type", "", "File type, for example MP4 or JPG")
	cmd.Flags().StringVar(&spec.Notes, "notes", "", "Safe zone notes")
	return cmd
}

func newSpecsConstraintsCommand(ctx *commandContext) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "constraints <platform>",
		Short: "Describe a catalog platform or format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			text, err := lib.Constraints(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Format ID within the platform")
	return cmd
}
