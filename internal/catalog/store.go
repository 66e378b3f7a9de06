package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"nflvis/internal/dataset"
)

// Store is a SQLite index of the games and plays of one season.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or connects to the catalog database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// IndexResult summarizes one Index call.
type IndexResult struct {
	Games   int       `json:"games"`
	Plays   int       `json:"plays"`
	Skipped int       `json:"skipped"`
	At      time.Time `json:"indexed_at"`
}

// Index replaces the catalog contents with games and plays in a single
// transaction. Plays whose game is not in games are skipped.
func (s *Store) Index(ctx context.Context, games []dataset.Game, plays []dataset.Play) (IndexResult, error) {
	result := IndexResult{At: time.Now().UTC()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin index tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM plays", "DELETE FROM games"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return result, fmt.Errorf("clear catalog: %w", err)
		}
	}

	gameStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO games (game_id, season, week, game_date, home_team, visitor_team)
         VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return result, fmt.Errorf("prepare game insert: %w", err)
	}
	defer gameStmt.Close()

	known := make(map[int64]struct{}, len(games))
	for _, g := range games {
		if _, err := gameStmt.ExecContext(ctx,
			g.GameID,
			g.Season,
			g.Week,
			nullableDate(g.GameDate),
			string(g.HomeTeamAbbr),
			string(g.VisitorTeamAbbr),
		); err != nil {
			return result, fmt.Errorf("insert game %d: %w", g.GameID, err)
		}
		known[g.GameID] = struct{}{}
		result.Games++
	}

	playStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO plays (
            game_id, play_id, quarter, down, yards_to_go, possession_team,
            defensive_team, game_clock, description, pass_result, nullified
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return result, fmt.Errorf("prepare play insert: %w", err)
	}
	defer playStmt.Close()

	for _, p := range plays {
		if _, ok := known[p.GameID]; !ok {
			result.Skipped++
			continue
		}
		if _, err := playStmt.ExecContext(ctx,
			p.GameID,
			p.PlayID,
			p.Quarter,
			p.Down,
			p.YardsToGo,
			nullableString(string(p.PossessionTeam)),
			nullableString(string(p.DefensiveTeam)),
			nullableString(p.GameClock),
			p.PlayDescription,
			nullableString(string(p.PassResult)),
			boolToInt(p.PlayNullifiedByPenalty),
		); err != nil {
			return result, fmt.Errorf("insert play %d/%d: %w", p.GameID, p.PlayID, err)
		}
		result.Plays++
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO index_runs (indexed_at, games, plays) VALUES (?, ?, ?)",
		result.At.Format(time.RFC3339Nano), result.Games, result.Plays,
	); err != nil {
		return result, fmt.Errorf("record index run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit index: %w", err)
	}
	return result, nil
}

// Count reports the number of indexed plays.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM plays").Scan(&n); err != nil {
		return 0, fmt.Errorf("count plays: %w", err)
	}
	return n, nil
}

// LastIndexed returns when the catalog was last rebuilt. ok is false for a
// catalog that has never been indexed.
func (s *Store) LastIndexed(ctx context.Context) (at time.Time, ok bool, err error) {
	var raw sql.NullString
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(indexed_at) FROM index_runs").Scan(&raw); err != nil {
		return time.Time{}, false, fmt.Errorf("read last index run: %w", err)
	}
	if !raw.Valid {
		return time.Time{}, false, nil
	}
	at, err = time.Parse(time.RFC3339Nano, raw.String)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse index time: %w", err)
	}
	return at, true, nil
}

// likeEscaper makes LIKE wildcards in user text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Filter narrows Search. Zero fields match everything.
type Filter struct {
	GameID int64
	Week   int
	// Team matches either side of the game.
	Team string
	// Text is a case-insensitive substring of the play description.
	Text  string
	Limit int
}

const defaultSearchLimit = 50

// Entry is one search hit.
type Entry struct {
	GameID         int64  `json:"game_id"`
	PlayID         int64  `json:"play_id"`
	Week           int    `json:"week"`
	HomeTeam       string `json:"home_team"`
	VisitorTeam    string `json:"visitor_team"`
	Quarter        int    `json:"quarter"`
	Down           int    `json:"down"`
	YardsToGo      int    `json:"yards_to_go"`
	GameClock      string `json:"game_clock"`
	PossessionTeam string `json:"possession_team"`
	Description    string `json:"description"`
	Nullified      bool   `json:"nullified"`
}

// Search returns plays matching filter ordered by game then play.
func (s *Store) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if filter.GameID != 0 {
		where = append(where, "p.game_id = ?")
		args = append(args, filter.GameID)
	}
	if filter.Week != 0 {
		where = append(where, "g.week = ?")
		args = append(args, filter.Week)
	}
	if team := strings.TrimSpace(filter.Team); team != "" {
		where = append(where, "(g.home_team = ? OR g.visitor_team = ?)")
		args = append(args, team, team)
	}
	if text := strings.TrimSpace(filter.Text); text != "" {
		where = append(where, `LOWER(p.description) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(text))+"%")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	query := `SELECT p.game_id, p.play_id, g.week, g.home_team, g.visitor_team,
            p.quarter, p.down, p.yards_to_go, p.game_clock, p.possession_team,
            p.description, p.nullified
        FROM plays p JOIN games g ON g.game_id = p.game_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.game_id, p.play_id LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search plays: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			clock      sql.NullString
			possession sql.NullString
			nullified  int
		)
		if err := rows.Scan(
			&e.GameID, &e.PlayID, &e.Week, &e.HomeTeam, &e.VisitorTeam,
			&e.Quarter, &e.Down, &e.YardsToGo, &clock, &possession,
			&e.Description, &nullified,
		); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		e.GameClock = clock.String
		e.PossessionTeam = possession.String
		e.Nullified = nullified != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plays: %w", err)
	}
	return entries, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func nullableDate(d dataset.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Format(time.DateOnly)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
