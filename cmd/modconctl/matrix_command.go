package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"modcon/internal/adapter/repo"
	"modcon/internal/production"
)

func newMatrixCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Consolidate specs into production jobs",
	}
	cmd.AddCommand(newMatrixBuildCommand(ctx))
	return cmd
}

func newMatrixBuildCommand(ctx *commandContext) *cobra.Command {
	var req production.BuildRequest
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the production matrix for a concept",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			svc := production.NewService(lib, repo.NewMemory(), ctx.logger())
			res, err := svc.BuildJobs(cmd.Context(), req)
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, res)
			}
			rows := make([][]string, 0, len(res.Plan.Jobs))
			for _, job := range res.Plan.Jobs {
				rows = append(rows, []string{job.JobID, job.AssetType, job.FileFormat, strconv.Itoa(len(job.Destinations)), job.TechnicalSummary})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Job", "Asset", "Format", "Destinations", "Summary"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d jobs, %d destinations\n", res.Summary.TotalJobs, res.Summary.TotalDestinations)
			for _, id := range res.Unresolved {
				fmt.Fprintf(out, "unresolved spec: %s\n", id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CreativeConcept, "concept", "", "Creative concept")
	cmd.Flags().StringSliceVar(&req.SpecIDs, "spec", nil, "Spec ID (repeatable or comma separated)")
	cmd.Flags().StringVar(&req.CampaignName, "campaign", "", "Campaign name")
	cmd.Flags().StringVar(&req.SingleMindedProposition, "smp", "", "Single-minded proposition")
	cmd.Flags().StringVar(&req.SourceType, "source-type", "", "Source type stamped on every job")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
