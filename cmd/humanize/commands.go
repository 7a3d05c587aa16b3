package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"content-humanizer/humanizer"
	"content-humanizer/models"
	"content-humanizer/services"

	"github.com/spf13/cobra"
)

func newTextCmd() *cobra.Command {
	var showBefore bool
	cmd := &cobra.Command{
		Use:   "text [words...]",
		Short: "Humanize the given text (or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			res := humanizer.Test(text)
			if showBefore {
				fmt.Fprintf(cmd.OutOrStdout(), "before: %s\nafter:  %s\n", res.Before, res.After)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.After)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBefore, "diff", false, "Print input and output")
	return cmd
}

func parseTarget(arg string) (models.Collection, error) {
	c, ok := models.ParseCollection(arg)
	if !ok {
		return "", fmt.Errorf("%w: %q", services.ErrUnknownCollection, arg)
	}
	return c, nil
}

func newRunCmd(opts *cliOptions) *cobra.Command {
	var dryRun, asJSON bool
	cmd := &cobra.Command{
		Use:   "run <brands|models|upcoming|variants|all>",
		Short: "Humanize stored content and persist changed fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := serviceFactory(opts.logger())
			if err != nil {
				return err
			}
			ctx, cancel := opts.newContext()
			defer cancel()

			out := cmd.OutOrStdout()
			if args[0] == "all" {
				run, err := svc.RunAll(ctx, dryRun)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, run)
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "COLLECTION\tTOTAL\tUPDATED\tSKIPPED")
				for _, c := range models.AllCollections {
					s := run.Results[c]
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", c, s.Total, s.Updated, s.Skipped)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(out, "run %s: %d updated\n", run.RunID, run.TotalUpdated)
				return nil
			}

			c, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			report, err := svc.RunCollection(ctx, c, dryRun)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, report)
			}
			for _, r := range report.Results {
				if r.Updated {
					fmt.Fprintf(out, "updated  %-30s %s\n", r.Name, strings.Join(r.Fields, ","))
				}
			}
			fmt.Fprintf(out, "%s: %d total, %d updated, %d skipped\n",
				c, report.Summary.Total, report.Summary.Updated, report.Summary.Skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute changes without writing them")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func newDiagnoseCmd(opts *cliOptions) *cobra.Command {
	var pendingOnly bool
	cmd := &cobra.Command{
		Use:   "diagnose <collection>",
		Short: "Explain which documents still contain trigger phrases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			svc, err := serviceFactory(opts.logger())
			if err != nil {
				return err
			}
			ctx, cancel := opts.newContext()
			defer cancel()

			diags, err := svc.Diagnose(ctx, c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range diags {
				if pendingOnly && d.Status != services.StatusPending {
					continue
				}
				fmt.Fprintf(out, "%-9s %s", d.Status, d.Name)
				if len(d.Triggers) > 0 {
					fmt.Fprintf(out, " [%s]", strings.Join(d.Triggers, ", "))
				}
				fmt.Fprintln(out)
			}
			counts := services.CountByStatus(diags)
			fmt.Fprintf(out, "pending=%d compliant=%d empty=%d\n",
				counts[services.StatusPending], counts[services.StatusCompliant], counts[services.StatusEmpty])
			return nil
		},
	}
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only list documents that would change")
	return cmd
}

func newPreviewCmd(opts *cliOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "preview <brands|models|variants>",
		Short: "Show before/after for a few documents without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := serviceFactory(opts.logger())
			if err != nil {
				return err
			}
			ctx, cancel := opts.newContext()
			defer cancel()

			previews, err := svc.Preview(ctx, models.Collection(args[0]), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range previews {
				fmt.Fprintf(out, "== %s (%s)\n- %s\n+ %s\n", p.Name, p.Field, p.Before, p.After)
			}
			fmt.Fprintf(out, "%d previews\n", len(previews))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "Number of documents to inspect")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
