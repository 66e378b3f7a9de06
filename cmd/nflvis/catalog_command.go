package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"nflvis/internal/catalog"
	"nflvis/internal/logging"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Index and search the season's plays",
	}

	catalogCmd.AddCommand(newCatalogIndexCommand(ctx))
	catalogCmd.AddCommand(newCatalogSearchCommand(ctx))

	return catalogCmd
}

func openCatalog(cmd *cobra.Command, ctx *commandContext) (*catalog.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := catalog.Open(cmd.Context(), cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}

func newCatalogIndexCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the catalog from games.csv and plays.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, logger, err := ctx.loader()
			if err != nil {
				return err
			}
			games, err := loader.LoadGames()
			if err != nil {
				return err
			}
			plays, err := loader.LoadPlays()
			if err != nil {
				return err
			}

			store, err := openCatalog(cmd, ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := store.Index(cmd.Context(), games.Rows, plays.Rows)
			if err != nil {
				return err
			}
			logging.NewComponentLogger(logger, "catalog").Info("catalog indexed",
				logging.String("path", store.Path()),
				logging.Int("games", result.Games),
				logging.Int("plays", result.Plays),
				logging.Int("skipped", result.Skipped))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d games and %d plays into %s\n", result.Games, result.Plays, store.Path())
			if result.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d plays with no matching game\n", result.Skipped)
			}
			return nil
		},
	}
}

func newCatalogSearchCommand(ctx *commandContext) *cobra.Command {
	var filter catalog.Filter
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find plays by game, week, team, or description text",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCatalog(cmd, ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			filter.Team = normalizeTeam(filter.Team)
			entries, err := store.Search(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if jsonOutput {
				if entries == nil {
					entries = []catalog.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				if n, err := store.Count(cmd.Context()); err == nil && n == 0 {
					fmt.Fprintln(out, "Catalog is empty; run `nflvis catalog index` first")
					return nil
				}
				fmt.Fprintln(out, "No matching plays")
				printLastIndexed(cmd, store)
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(e.GameID, 10),
					strconv.FormatInt(e.PlayID, 10),
					strconv.Itoa(e.Week),
					e.VisitorTeam + " @ " + e.HomeTeam,
					fmt.Sprintf("Q%d %s", e.Quarter, e.GameClock),
					fmt.Sprintf("%d & %d", e.Down, e.YardsToGo),
					yesNo(e.Nullified),
					e.Description,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Game", "Play", "Week", "Matchup", "Clock", "Down", "Nullified", "Description"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight},
			))
			printLastIndexed(cmd, store)
			return nil
		},
	}

	cmd.Flags().Int64Var(&filter.GameID, "game", 0, "Game id")
	cmd.Flags().IntVar(&filter.Week, "week", 0, "Week number")
	cmd.Flags().StringVar(&filter.Team, "team", "", "Club code on either side of the game")
	cmd.Flags().StringVar(&filter.Text, "text", "", "Case-insensitive description substring")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "Maximum results")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func printLastIndexed(cmd *cobra.Command, store *catalog.Store) {
	at, ok, err := store.LastIndexed(cmd.Context())
	if err != nil || !ok {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog last indexed %s\n", at.Local().Format(time.DateTime))
}
