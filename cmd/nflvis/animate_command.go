package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nflvis/internal/dataset"
	"nflvis/internal/fileutil"
	"nflvis/internal/logging"
	"nflvis/internal/playvis"
)

type animateOptions struct {
	gameID int64
	playID int64
	weeks  string
	out    string
	format string
}

func newAnimateCommand(ctx *commandContext) *cobra.Command {
	var opts animateOptions

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render one play as an animated field figure",
		Long: "Render one play as an animated field figure.\n" +
			"Without --weeks the tracking week is taken from the game's week. " +
			"Use --out - to write to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimate(cmd, ctx, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.gameID, "game", 0, "Game id")
	cmd.Flags().Int64Var(&opts.playID, "play", 0, "Play id")
	cmd.Flags().StringVar(&opts.weeks, "weeks", "", "Tracking week N or inclusive range A-B")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default: <render.output_dir>/game_<g>_play_<p>.<format>)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: html or json (default from config)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("play")
	return cmd
}

func runAnimate(cmd *cobra.Command, ctx *commandContext, opts animateOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	baseLogger, err := ctx.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format == "" {
		format = cfg.Render.Format
	}
	if format != "html" && format != "json" {
		return fmt.Errorf("unsupported format %q (want html or json)", format)
	}

	runCtx := logging.WithCorrelationID(cmd.Context(), uuid.NewString())
	logger := logging.NewComponentLogger(logging.WithContext(runCtx, baseLogger), "animate")
	loader := dataset.NewLoader(cfg.SeasonDir(), logging.WithContext(runCtx, baseLogger))

	games, err := loader.LoadGames()
	if err != nil {
		return err
	}
	start, end, err := resolveWeeks(opts, games.Rows)
	if err != nil {
		return err
	}
	plays, err := loader.LoadPlays()
	if err != nil {
		return err
	}
	var tracking dataset.Table[dataset.TrackingFrame]
	if start == end {
		tracking, err = loader.LoadTrackingWeek(start)
	} else {
		tracking, err = loader.LoadTracking(start, end)
	}
	if err != nil {
		return err
	}

	started := time.Now()
	anim, err := playvis.Animate(games.Rows, tracking.Rows, plays.Rows, opts.gameID, opts.playID, playvis.Options{
		FrameDurationMS: cfg.Render.FrameDurationMS,
		Scale:           cfg.Render.Scale,
	})
	if err != nil {
		return err
	}
	logColorDecision(logger, anim)

	target, err := writeAnimation(runCtx, cmd.OutOrStdout(), anim, opts, format, cfg.Render.OutputDir, cfg.Render.PlotlyURL)
	if err != nil {
		return err
	}
	logger.Info("play rendered",
		logging.Int64("game_id", anim.GameID),
		logging.Int64("play_id", anim.PlayID),
		logging.Int("frames", len(anim.Frames)),
		logging.String("format", format),
		logging.String("output", target),
		logging.Duration("elapsed", time.Since(started)))

	if target == "-" {
		return nil
	}
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderStatusLine("Play", statusInfo,
		fmt.Sprintf("%s @ %s, game %d play %d", anim.VisitorTeam, anim.HomeTeam, anim.GameID, anim.PlayID), colorize))
	fmt.Fprintln(out, renderStatusLine("Frames", statusInfo, fmt.Sprintf("%d", len(anim.Frames)), colorize))
	if anim.ColorsSwapped {
		fmt.Fprintln(out, renderStatusLine("Colors", statusWarn, anim.Teams[1]+" uses reversed colors", colorize))
	}
	fmt.Fprintln(out, renderStatusLine("Output", statusOK, target, colorize))
	return nil
}

// resolveWeeks uses --weeks when given and otherwise the selected game's week.
func resolveWeeks(opts animateOptions, games []dataset.Game) (int, int, error) {
	if strings.TrimSpace(opts.weeks) != "" {
		return parseWeeks(opts.weeks)
	}
	for _, g := range games {
		if g.GameID == opts.gameID {
			return g.Week, g.Week, nil
		}
	}
	return 0, 0, &playvis.SelectionNotFoundError{Table: "games", GameID: opts.gameID, PlayID: opts.playID}
}

func logColorDecision(logger *slog.Logger, anim *playvis.Animation) {
	result := "natural"
	reason := "primary colors are distinct"
	if anim.ColorsSwapped {
		result = "swapped"
		reason = fmt.Sprintf("%s and %s primaries are too similar", anim.Teams[0], anim.Teams[1])
	}
	attrs := append(logging.DecisionAttrs("marker_colors", result, reason),
		logging.String("team", anim.Teams[1]),
		logging.Float64("color_distance", anim.ColorDistance),
		logging.Bool("colors_swapped", anim.ColorsSwapped))
	logger.Info("marker colors assigned", logging.Args(attrs...)...)

	if anim.ColorsSwapped {
		logging.WarnWithContext(logger, "marker colors reversed", "color_swap",
			logging.String("team", anim.Teams[1]),
			logging.Float64("color_distance", anim.ColorDistance),
			logging.String(logging.FieldErrorHint, "markers use the secondary color as fill"),
			logging.String(logging.FieldImpact, anim.Teams[1]+" markers differ from team branding"))
	}
}

func writeAnimation(ctx context.Context, stdout io.Writer, anim *playvis.Animation, opts animateOptions, format, outputDir, plotlyURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := strings.TrimSpace(opts.out)
	if target == "-" {
		return target, encodeAnimation(stdout, anim, format, plotlyURL)
	}
	if target == "" {
		target = filepath.Join(outputDir, fmt.Sprintf("game_%d_play_%d.%s", anim.GameID, anim.PlayID, format))
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := fileutil.WriteAtomic(target, func(w io.Writer) error {
		return encodeAnimation(w, anim, format, plotlyURL)
	}); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

func encodeAnimation(w io.Writer, anim *playvis.Animation, format, plotlyURL string) error {
	if format == "json" {
		return anim.WriteJSON(w)
	}
	return anim.WriteHTML(w, plotlyURL)
}
