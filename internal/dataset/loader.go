package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"nflvis/internal/logging"
)

// Loader reads the raw tables of one season directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader binds a loader to a season directory. A nil logger discards output.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "dataset"),
	}
}

// Dir returns the season directory.
func (l *Loader) Dir() string { return l.dir }

// LoadGames reads games.csv.
func (l *Loader) LoadGames() (Table[Game], error) {
	rows, err := readCSV[Game](l, "games.csv")
	if err != nil {
		return Table[Game]{}, err
	}
	return Table[Game]{Rows: rows, Categories: makeCategoricals(rows, gameCategoricals)}, nil
}

// LoadPlayers reads players.csv and derives HeightIn for every player.
func (l *Loader) LoadPlayers() (Table[Player], error) {
	rows, err := readCSV[Player](l, "players.csv")
	if err != nil {
		return Table[Player]{}, err
	}
	for i := range rows {
		inches, err := ParseHeight(rows[i].Height)
		if err != nil {
			return Table[Player]{}, fmt.Errorf("player %d: %w", rows[i].NFLID, err)
		}
		rows[i].HeightIn = inches
	}
	return Table[Player]{Rows: rows, Categories: makeCategoricals(rows, playerCategoricals)}, nil
}

// LoadPlays reads plays through the plays.pq cache.
func (l *Loader) LoadPlays() (Table[Play], error) {
	rows, err := readThrough(l, playsCacheTemplate, nil, func() ([]Play, error) {
		rows, err := readCSV[Play](l, "plays.csv")
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].PlayNullifiedByPenalty = rows[i].PlayNullifiedByPenaltyFlag == "Y"
		}
		return rows, nil
	})
	if err != nil {
		return Table[Play]{}, err
	}
	return Table[Play]{Rows: rows, Categories: makeCategoricals(rows, playCategoricals)}, nil
}

// LoadTackles reads tackles through the tackles.pq cache.
func (l *Loader) LoadTackles() (Table[Tackle], error) {
	rows, err := readThrough(l, tacklesCacheTemplate, nil, func() ([]Tackle, error) {
		return readCSV[Tackle](l, "tackles.csv")
	})
	if err != nil {
		return Table[Tackle]{}, err
	}
	return Table[Tackle]{Rows: rows, Categories: map[string][]string{}}, nil
}

func readCSV[T any](l *Loader, name string) ([]T, error) {
	path := filepath.Join(l.dir, name)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	l.logger.Debug("read source file",
		logging.String("file", name),
		logging.Int("rows", len(rows)))
	return rows, nil
}
