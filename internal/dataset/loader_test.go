package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"nflvis/internal/logging"
	"nflvis/internal/testsupport"
)

func newFixtureLoader(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	testsupport.WriteSeason(t, dir)
	return NewLoader(dir, logging.NewNop())
}

func TestLoadGames(t *testing.T) {
	loader := newFixtureLoader(t)

	games, err := loader.LoadGames()
	if err != nil {
		t.Fatalf("LoadGames: %v", err)
	}
	if games.Len() != 2 {
		t.Fatalf("expected 2 games, got %d", games.Len())
	}
	first := games.Rows[0]
	if first.GameID != testsupport.FixtureGameID || first.HomeTeamAbbr != "LA" || first.VisitorTeamAbbr != "BUF" {
		t.Fatalf("unexpected first game: %+v", first)
	}
	if first.GameDate.Month() != 9 || first.GameDate.Day() != 8 {
		t.Fatalf("game date = %v", first.GameDate.Time)
	}
	if first.HomeFinalScore != Int(10) {
		t.Fatalf("home score = %+v", first.HomeFinalScore)
	}
	if games.Rows[1].HomeFinalScore.Valid {
		t.Fatal("NA score should be null")
	}
	if got := games.Categories["homeTeamAbbr"]; !reflect.DeepEqual(got, []string{"KC", "LA"}) {
		t.Fatalf("homeTeamAbbr levels = %v", got)
	}
}

func TestLoadPlayersDerivesHeight(t *testing.T) {
	loader := newFixtureLoader(t)

	players, err := loader.LoadPlayers()
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	want := map[int64]int{25511: 76, 35459: 71, 43294: 72}
	for _, p := range players.Rows {
		if p.HeightIn != want[p.NFLID] {
			t.Fatalf("player %d heightIn = %d, want %d", p.NFLID, p.HeightIn, want[p.NFLID])
		}
	}
	if got := players.Categories["position"]; !reflect.DeepEqual(got, []string{"CB", "QB", "WR"}) {
		t.Fatalf("position levels = %v", got)
	}
	if got := players.Categories["collegeName"]; !reflect.DeepEqual(got, []string{"Florida State", "Michigan"}) {
		t.Fatalf("collegeName levels = %v", got)
	}
}

func TestLoadPlayersRejectsMalformedHeight(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteText(t, filepath.Join(dir, "players.csv"),
		"nflId,height,weight,birthDate,collegeName,position,displayName\n1,6'4,200,NA,NA,QB,Bad Height\n")
	loader := NewLoader(dir, nil)

	_, err := loader.LoadPlayers()
	if !errors.Is(err, ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
}

func TestLoadPlays(t *testing.T) {
	loader := newFixtureLoader(t)

	plays, err := loader.LoadPlays()
	if err != nil {
		t.Fatalf("LoadPlays: %v", err)
	}
	if plays.Len() != testsupport.FixtureTotalPlays {
		t.Fatalf("expected %d plays, got %d", testsupport.FixtureTotalPlays, plays.Len())
	}
	nullified := map[int64]bool{}
	for _, p := range plays.Rows {
		nullified[p.PlayID] = p.PlayNullifiedByPenalty
	}
	if nullified[56] || !nullified[80] || nullified[101] {
		t.Fatalf("nullified flags = %v", nullified)
	}
	first := plays.Rows[0]
	if !strings.HasPrefix(first.PlayDescription, "(10:10) J.Allen") {
		t.Fatalf("description = %q", first.PlayDescription)
	}
	if first.AbsoluteYardlineNumber != 43 || first.YardsToGo != 7 || first.Down != 2 {
		t.Fatalf("unexpected play geometry: %+v", first)
	}
	if first.DefendersInTheBox != Float(6) {
		t.Fatalf("defendersInTheBox = %+v", first.DefendersInTheBox)
	}
	if plays.Rows[1].OffenseFormation != "" || plays.Rows[1].PrePenaltyPlayResult.Valid {
		t.Fatalf("NA values not null: %+v", plays.Rows[1])
	}
	if got := plays.Categories["offenseFormation"]; !reflect.DeepEqual(got, []string{"I_FORM", "SHOTGUN"}) {
		t.Fatalf("offenseFormation levels = %v", got)
	}
	if got := plays.Categories["passResult"]; !reflect.DeepEqual(got, []string{"C"}) {
		t.Fatalf("passResult levels = %v", got)
	}

	carriers := BallCarriers(plays.Rows)
	if len(carriers) != 3 || carriers[2].BallCarrierID != Int(25511) {
		t.Fatalf("ball carriers = %+v", carriers)
	}
}

func TestLoadTackles(t *testing.T) {
	loader := newFixtureLoader(t)

	tackles, err := loader.LoadTackles()
	if err != nil {
		t.Fatalf("LoadTackles: %v", err)
	}
	if tackles.Len() != 2 || tackles.Rows[0].Tackle != 1 || tackles.Rows[1].Assist != 1 {
		t.Fatalf("unexpected tackles: %+v", tackles.Rows)
	}
}

func TestLoadTrackingWeek(t *testing.T) {
	loader := newFixtureLoader(t)

	tracking, err := loader.LoadTrackingWeek(1)
	if err != nil {
		t.Fatalf("LoadTrackingWeek: %v", err)
	}
	if tracking.Len() != testsupport.FixtureWeek1Rows {
		t.Fatalf("expected %d rows, got %d", testsupport.FixtureWeek1Rows, tracking.Len())
	}
	ball := tracking.Rows[1]
	if !ball.IsBall() || ball.NFLID.Valid || ball.JerseyNumber.Valid {
		t.Fatalf("ball row = %+v", ball)
	}
	if tracking.Rows[0].O.Valid || !tracking.Rows[2].O.Valid {
		t.Fatal("orientation nulls not decoded")
	}
	if got := tracking.Categories["club"]; !reflect.DeepEqual(got, []string{"BUF", "LA", "football"}) {
		t.Fatalf("club levels = %v", got)
	}
	if got := tracking.Categories["event"]; !reflect.DeepEqual(got, []string{"ball_snap"}) {
		t.Fatalf("event levels = %v", got)
	}
}

func TestLoadTrackingRangeConcatenatesWeeks(t *testing.T) {
	loader := newFixtureLoader(t)

	tracking, err := loader.LoadTracking(1, 2)
	if err != nil {
		t.Fatalf("LoadTracking: %v", err)
	}
	want := testsupport.FixtureWeek1Rows + testsupport.FixtureWeek2Rows
	if tracking.Len() != want {
		t.Fatalf("expected %d rows, got %d", want, tracking.Len())
	}
	for i, row := range tracking.Rows {
		wantGame := testsupport.FixtureGameID
		if i >= testsupport.FixtureWeek1Rows {
			wantGame = testsupport.FixtureWeek2Game
		}
		if row.GameID != wantGame {
			t.Fatalf("row %d game = %d, want %d", i, row.GameID, wantGame)
		}
	}
	for _, name := range []string{"tracking_week_1.pq", "tracking_week_2.pq", "tracking_week_1_2.pq"} {
		if _, err := os.Stat(filepath.Join(loader.Dir(), name)); err != nil {
			t.Fatalf("expected cache file %s: %v", name, err)
		}
	}
}

func TestLoadTrackingRejectsBadRange(t *testing.T) {
	loader := newFixtureLoader(t)

	if _, err := loader.LoadTracking(3, 1); err == nil {
		t.Fatal("expected error for reversed range")
	}
	if _, err := loader.LoadTrackingWeek(0); err == nil {
		t.Fatal("expected error for week 0")
	}
}

func TestMissingFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir, nil)

	_, err := loader.LoadGames()
	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if filepath.Base(missing.Path) != "games.csv" {
		t.Fatalf("missing path = %s", missing.Path)
	}

	if _, err := loader.LoadPlays(); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile for plays, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "plays.pq")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cache written for failed load: %v", err)
	}
	if _, err := loader.LoadTrackingWeek(7); !errors.Is(err, ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile for tracking, got %v", err)
	}
}
