package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clear the parquet cache of the season directory",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cache files",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, _, err := ctx.loader()
			if err != nil {
				return err
			}
			files, err := loader.CacheFiles()
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, files)
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "No cache files in %s\n", loader.Dir())
				return nil
			}
			const stampLayout = "2006-01-02 15:04"
			rows := make([][]string, 0, len(files))
			var total int64
			for _, f := range files {
				rows = append(rows, []string{f.Name, humanBytes(f.SizeBytes), f.ModifiedAt.Local().Format(stampLayout)})
				total += f.SizeBytes
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Size", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d files, %s\n", len(files), humanBytes(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [names...]",
		Short: "Delete cache files so the next load re-reads the CSVs",
		Long: "Delete cache files so the next load re-reads the CSVs.\n" +
			"With no names every cache file is removed. Names may omit the .pq suffix.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, _, err := ctx.loader()
			if err != nil {
				return err
			}
			removed, err := loader.ClearCache(args...)
			out := cmd.OutOrStdout()
			for _, name := range removed {
				fmt.Fprintf(out, "Removed %s\n", name)
			}
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				fmt.Fprintln(out, "No cache files removed")
			}
			return nil
		},
	}
}

func humanBytes(v int64) string {
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}
	div := int64(unit)
	exp := 0
	for n := v / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(v)/float64(div), "KMGTPE"[exp])
}
