package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nflvis/internal/dataset"
)

// datasetSummary is the printable result of a load.
type datasetSummary struct {
	Dataset    string              `json:"dataset"`
	Rows       int                 `json:"rows"`
	Categories map[string][]string `json:"categories"`
}

func summarize[T any](name string, table dataset.Table[T]) datasetSummary {
	return datasetSummary{Dataset: name, Rows: table.Len(), Categories: table.Categories}
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var weeks string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:       "load <games|players|plays|tackles|tracking>",
		Short:     "Load a dataset (warming its cache) and summarize it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"games", "players", "plays", "tackles", "tracking"},
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, _, err := ctx.loader()
			if err != nil {
				return err
			}

			var summary datasetSummary
			switch name := strings.ToLower(args[0]); name {
			case "games":
				t, err := loader.LoadGames()
				if err != nil {
					return err
				}
				summary = summarize(name, t)
			case "players":
				t, err := loader.LoadPlayers()
				if err != nil {
					return err
				}
				summary = summarize(name, t)
			case "plays":
				t, err := loader.LoadPlays()
				if err != nil {
					return err
				}
				summary = summarize(name, t)
			case "tackles":
				t, err := loader.LoadTackles()
				if err != nil {
					return err
				}
				summary = summarize(name, t)
			case "tracking":
				if strings.TrimSpace(weeks) == "" {
					return fmt.Errorf("tracking requires --weeks")
				}
				start, end, err := parseWeeks(weeks)
				if err != nil {
					return err
				}
				var t dataset.Table[dataset.TrackingFrame]
				if start == end {
					t, err = loader.LoadTrackingWeek(start)
				} else {
					t, err = loader.LoadTracking(start, end)
				}
				if err != nil {
					return err
				}
				summary = summarize(fmt.Sprintf("tracking weeks %d-%d", start, end), t)
			default:
				return fmt.Errorf("unknown dataset %q", args[0])
			}

			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&weeks, "weeks", "", "Tracking week N or inclusive range A-B")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func printSummary(out io.Writer, summary datasetSummary) {
	fmt.Fprintf(out, "%s: %d rows\n", summary.Dataset, summary.Rows)
	if len(summary.Categories) == 0 {
		return
	}
	columns := make([]string, 0, len(summary.Categories))
	for col := range summary.Categories {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	rows := make([][]string, 0, len(columns))
	for _, col := range columns {
		levels := summary.Categories[col]
		rows = append(rows, []string{col, strconv.Itoa(len(levels)), strings.Join(levels, ", ")})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Column", "Levels", "Values"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
}
