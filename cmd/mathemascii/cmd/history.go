package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/internal/render/store"
)

var (
	historyQuery  string
	historyLimit  int
	historySince  time.Duration
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the render history",
	Long: `Lists, shows, prunes and summarizes the renders recorded by
"mathemascii serve" and "mathemascii render --save".

Without a subcommand the most recent renders are listed.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded renders, newest first",
	Long: `Lists recorded renders, newest first.

Examples:
  mathemascii history list --limit 10
  mathemascii history list --query sqrt --since 24h`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded render",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Apply the configured retention",
	Long: `Removes renders older than history.retention_days and keeps at most
history.max_records of the newest ones.`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the render history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyPruneCmd, historyStatsCmd)

	for _, c := range []*cobra.Command{historyCmd, historyListCmd} {
		c.Flags().StringVarP(&historyQuery, "query", "q", "", "only renders whose input contains this text")
		c.Flags().IntVarP(&historyLimit, "limit", "n", store.DefaultLimit, "maximum number of renders")
		c.Flags().DurationVar(&historySince, "since", 0, "only renders newer than this, e.g. 24h")
	}
	for _, c := range []*cobra.Command{historyCmd, historyListCmd, historyShowCmd, historyStatsCmd} {
		c.Flags().StringVarP(&historyFormat, "format", "f", FormatText, "output format: text, json or yaml")
	}
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if err := checkFormat(historyFormat); err != nil {
		return err
	}
	svc, err := newHistoryService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	q := store.Query{Contains: historyQuery, Limit: historyLimit}
	if historySince > 0 {
		q.Since = time.Now().Add(-historySince)
	}
	records, err := svc.History(cmd.Context(), q)
	if err != nil {
		return err
	}

	if historyFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), historyFormat, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no renders recorded")
		return nil
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID[:min(8, len(r.ID))],
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Source,
			r.Display,
			strconv.Itoa(r.Warnings),
			truncate(r.Input, 40),
		})
	}
	writeTable(cmd.OutOrStdout(), []string{"ID", "CREATED", "SOURCE", "DISPLAY", "WARNINGS", "INPUT"}, rows)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if err := checkFormat(historyFormat); err != nil {
		return err
	}
	svc, err := newHistoryService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	rec, err := svc.HistoryRecord(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if historyFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), historyFormat, rec)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ID:       %s\n", rec.ID)
	fmt.Fprintf(w, "Created:  %s\n", rec.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "Source:   %s\n", rec.Source)
	fmt.Fprintf(w, "Display:  %s\n", rec.Display)
	fmt.Fprintf(w, "Warnings: %d\n", rec.Warnings)
	fmt.Fprintf(w, "Duration: %s\n", rec.Duration)
	fmt.Fprintf(w, "Input:    %s\n\n%s\n", rec.Input, rec.MathML)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	svc, err := newHistoryService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	n, err := svc.PruneHistory(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d renders\n", n)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	if err := checkFormat(historyFormat); err != nil {
		return err
	}
	svc, err := newHistoryService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	stats, err := svc.HistoryStats(cmd.Context())
	if err != nil {
		return err
	}
	if historyFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), historyFormat, stats)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Renders:        %d\n", stats.Records)
	fmt.Fprintf(w, "With warnings:  %d\n", stats.WithWarnings)
	fmt.Fprintf(w, "Total warnings: %d\n", stats.TotalWarnings)
	fmt.Fprintf(w, "Avg duration:   %s\n", stats.AvgDuration)
	if stats.Records > 0 {
		fmt.Fprintf(w, "Oldest:         %s\n", stats.Oldest.Local().Format(time.RFC3339))
		fmt.Fprintf(w, "Newest:         %s\n", stats.Newest.Local().Format(time.RFC3339))
	}
	return nil
}

// truncate shortens s to n runes on one line
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
