package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"quicktick/internal/domain"
	"quicktick/internal/report"
	"quicktick/internal/schedule"
	"quicktick/internal/store"
)

// ---------------------------------------------------------------------------
// bucket
// ---------------------------------------------------------------------------

func (c *cli) bucketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bucket <day>",
		Short: "List the tickers scheduled for a day (1-91)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}
			tickers, err := schedule.GetBucket(day)
			if err != nil {
				return err
			}

			// The lookup is optional; without it only tickers are shown.
			var lookup domain.CompanyLookup
			if cfg, err := c.load(); err == nil {
				if l, err := store.LoadLookup(cfg.Storage.LookupPath); err == nil {
					lookup = l
				}
			}

			tw := newTable(cmd.OutOrStdout(), fmt.Sprintf("Day %d of %d", day, domain.TotalDays))
			tw.AppendHeader(table.Row{"#", "Ticker", "Name", "Sector"})
			for i, t := range tickers {
				e, ok := lookup[t]
				if !ok {
					e = domain.CompanyLookupEntry{Name: domain.NA, Sector: domain.NA}
				}
				tw.AppendRow(table.Row{i + 1, t, e.Name, e.Sector})
			}
			tw.AppendFooter(table.Row{"", len(tickers), "", ""})
			tw.Render()
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// cursor
// ---------------------------------------------------------------------------

func (c *cli) cursorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Show or move the rotation cursor",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the next due day and the last processed day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
			due := schedule.DueDay(cursor, c.log)
			last := schedule.LastRunDay(cursor, c.log)
			fmt.Fprintf(cmd.OutOrStdout(), "next due day: %d\nlast run day: %d\n", due, last)
			return nil
		},
	}

	advance := &cobra.Command{
		Use:   "advance",
		Short: "Move the cursor forward one day without generating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
			due := schedule.DueDay(cursor, c.log)
			next, err := schedule.Advance(due)
			if err != nil {
				return err
			}
			if err := cursor.Save(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cursor: %d -> %d\n", due, next)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <day>",
		Short: "Set the next due day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}
			cfg, err := c.load()
			if err != nil {
				return err
			}
			if err := schedule.NewCursorFile(cfg.Storage.CursorPath).Save(day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cursor: %d\n", day)
			return nil
		},
	}

	cmd.AddCommand(show, advance, set)
	return cmd
}

// ---------------------------------------------------------------------------
// today
// ---------------------------------------------------------------------------

func (c *cli) todayCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the manifest for the most recently processed bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			day := schedule.LastRunDay(schedule.NewCursorFile(cfg.Storage.CursorPath), c.log)
			m, err := schedule.BuildManifest(schedule.DefaultTable, day, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}
			fmt.Fprintf(out, "%s: day %d of %d, %d tickers\n", m.Date, m.Day, m.TotalDays, m.Count)
			for _, t := range m.Tickers {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the manifest as JSON")
	return cmd
}

// ---------------------------------------------------------------------------
// normalize
// ---------------------------------------------------------------------------

func (c *cli) normalizeCmd() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "normalize <file> <ticker>",
		Short: "Normalize a raw model response and print the stored report text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			n := report.Normalizer{ModelLabel: report.ModelLabel(model), Generated: time.Now()}
			fmt.Fprint(cmd.OutOrStdout(), n.Normalize(string(raw), args[1]))
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "claude-sonnet-4-20250514", "model named in the disclaimer")
	return cmd
}

// ---------------------------------------------------------------------------
// snapshot
// ---------------------------------------------------------------------------

func (c *cli) snapshotCmd() *cobra.Command {
	var latest bool
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write a dated parquet snapshot of the company lookup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			if cfg.Storage.SnapshotDir == "" {
				return errors.New("storage.snapshot_dir is not set")
			}
			snaps := store.NewSnapshotStore(cfg.Storage.SnapshotDir)
			out := cmd.OutOrStdout()

			if latest {
				lookup, date, err := snaps.Latest()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "latest snapshot: %s (%d companies)\n", date.Format("2006-01-02"), len(lookup))
				return nil
			}

			lookup, err := store.LoadLookup(cfg.Storage.LookupPath)
			if err != nil {
				return err
			}
			path, err := snaps.Write(lookup, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s (%d companies)\n", path, len(lookup))
			return nil
		},
	}
	cmd.Flags().BoolVar(&latest, "latest", false, "describe the newest snapshot instead of writing one")
	return cmd
}

// ---------------------------------------------------------------------------
// runs
// ---------------------------------------------------------------------------

func (c *cli) runsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recent job runs, or the per-ticker outcomes of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			if cfg.Storage.SQLitePath == "" {
				return errors.New("storage.sqlite_path is not set; no run ledger")
			}
			db, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				outcomes, err := db.Outcomes(ctx, args[0])
				if err != nil {
					return err
				}
				tw := newTable(out, "run "+args[0])
				tw.AppendHeader(table.Row{"Ticker", "Outcome"})
				tw.SortBy([]table.SortBy{{Name: "Ticker", Mode: table.Asc}})
				for t, o := range outcomes {
					tw.AppendRow(table.Row{t, string(o)})
				}
				tw.Render()
				return nil
			}

			runs, err := db.RecentRuns(ctx, limit)
			if err != nil {
				return err
			}
			tw := newTable(out, "recent runs")
			tw.AppendHeader(table.Row{"ID", "Job", "Day", "Started", "OK", "Failed", "Skipped", "Cost"})
			for _, r := range runs {
				tw.AppendRow(table.Row{r.ID, r.Job, r.Day, r.StartedAt, r.Successful, r.Failed, r.Skipped, fmt.Sprintf("$%.4f", r.Cost)})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list")
	return cmd
}
