package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nflvis/internal/playvis"
	"nflvis/internal/testsupport"
)

func TestLoadCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"load", "plays"}, env.configPath)
	if err != nil {
		t.Fatalf("load plays: %v", err)
	}
	requireContains(t, out, "plays: 3 rows")
	requireContains(t, out, "SHOTGUN")

	out, _, err = runCLI(t, []string{"load", "tracking", "--weeks", "1-2", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("load tracking: %v", err)
	}
	var summary datasetSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Rows != testsupport.FixtureWeek1Rows+testsupport.FixtureWeek2Rows {
		t.Fatalf("tracking rows = %d", summary.Rows)
	}

	if _, _, err := runCLI(t, []string{"load", "tracking"}, env.configPath); err == nil {
		t.Fatal("expected tracking without --weeks to fail")
	}
	if _, _, err := runCLI(t, []string{"load", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected unknown dataset to fail")
	}
}

func TestRootCommandClosesLogFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLogDir())

	cmd, closeLog := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--log-level", "info", "--config", env.configPath, "load", "plays"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("load plays: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(env.cfg.Logging.Dir, "nflvis.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(content), "wrote cache file")
}

func TestCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "No cache files")

	if _, _, err := runCLI(t, []string{"load", "tracking", "--weeks", "1-2"}, env.configPath); err != nil {
		t.Fatalf("load tracking: %v", err)
	}
	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "tracking_week_1_2.pq")
	requireContains(t, out, "3 files")

	out, _, err = runCLI(t, []string{"cache", "clear", "tracking_week_1_2"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed tracking_week_1_2.pq")
	if _, err := os.Stat(filepath.Join(env.seasonDir, "tracking_week_1.pq")); err != nil {
		t.Fatalf("week cache should remain: %v", err)
	}

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear all: %v", err)
	}
	requireContains(t, out, "Removed tracking_week_2.pq")
}

func TestCatalogCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"catalog", "search"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog search: %v", err)
	}
	requireContains(t, out, "Catalog is empty")
	if strings.Contains(out, "last indexed") {
		t.Fatalf("fresh catalog reports an index time: %q", out)
	}

	out, _, err = runCLI(t, []string{"catalog", "index"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog index: %v", err)
	}
	requireContains(t, out, "Indexed 2 games and 3 plays")

	out, _, err = runCLI(t, []string{"catalog", "search", "--team", "buf"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog search: %v", err)
	}
	requireContains(t, out, "BUF @ LA")
	requireContains(t, out, "Catalog last indexed ")

	out, _, err = runCLI(t, []string{"catalog", "search", "--text", "%"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog search text: %v", err)
	}
	requireContains(t, out, "No matching plays")

	out, _, err = runCLI(t, []string{"catalog", "search", "--week", "2", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog search json: %v", err)
	}
	var entries []struct {
		PlayID int64 `json:"play_id"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].PlayID != testsupport.FixtureWeek2Play {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestAnimateCommandWritesJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "play.json")

	out, _, err := runCLI(t, []string{
		"animate", "--game", "2022090800", "--play", "56", "--format", "json", "--out", target,
	}, env.configPath)
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	requireContains(t, out, target)

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var fig struct {
		Frames []struct {
			Name string `json:"name"`
		} `json:"frames"`
		Layout struct {
			Sliders []struct {
				Steps []json.RawMessage `json:"steps"`
			} `json:"sliders"`
		} `json:"layout"`
	}
	if err := json.Unmarshal(data, &fig); err != nil {
		t.Fatalf("decode figure: %v", err)
	}
	if len(fig.Frames) != 2 || fig.Frames[0].Name != "1" || fig.Frames[1].Name != "2" {
		t.Fatalf("frames = %+v", fig.Frames)
	}
	if len(fig.Layout.Sliders) != 1 || len(fig.Layout.Sliders[0].Steps) != 2 {
		t.Fatalf("expected one slider step per frame")
	}
}

func TestAnimateCommandDefaultsToHTMLInRenderDir(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"animate", "--game", "2022091200", "--play", "101"}, env.configPath); err != nil {
		t.Fatalf("animate: %v", err)
	}
	target := filepath.Join(env.cfg.Render.OutputDir, "game_2022091200_play_101.html")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Plotly.newPlot") {
		t.Fatal("html output missing plot call")
	}
	// Week 2 was inferred from the game, so only its cache exists.
	if _, err := os.Stat(filepath.Join(env.seasonDir, "tracking_week_2.pq")); err != nil {
		t.Fatalf("expected week 2 cache: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.seasonDir, "tracking_week_1.pq")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("week 1 should not be loaded: %v", err)
	}
}

func TestAnimateCommandUnknownPlay(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"animate", "--game", "2022090800", "--play", "999", "--format", "json", "--out", "-"}, env.configPath)
	if !errors.Is(err, playvis.ErrSelectionNotFound) {
		t.Fatalf("expected ErrSelectionNotFound, got %v", err)
	}
	_, _, err = runCLI(t, []string{"animate", "--game", "1", "--play", "1"}, env.configPath)
	if !errors.Is(err, playvis.ErrSelectionNotFound) {
		t.Fatalf("expected ErrSelectionNotFound for unknown game, got %v", err)
	}
}

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		raw        string
		start, end int
		wantErr    bool
	}{
		{raw: "3", start: 3, end: 3},
		{raw: "1-4", start: 1, end: 4},
		{raw: " 2 - 2 ", start: 2, end: 2},
		{raw: "4-1", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "a-b", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		start, end, err := parseWeeks(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseWeeks(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil || start != tt.start || end != tt.end {
			t.Fatalf("parseWeeks(%q) = %d, %d, %v", tt.raw, start, end, err)
		}
	}
}

func TestNormalizeTeam(t *testing.T) {
	if got := normalizeTeam(" kc "); got != "KC" {
		t.Fatalf("normalizeTeam = %q", got)
	}
}

func TestHumanBytes(t *testing.T) {
	if got := humanBytes(512); got != "512 B" {
		t.Fatalf("humanBytes(512) = %q", got)
	}
	if got := humanBytes(1536); got != "1.5 KiB" {
		t.Fatalf("humanBytes(1536) = %q", got)
	}
}
