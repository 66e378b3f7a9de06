package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"nflvis/internal/fileutil"
	"nflvis/internal/logging"
)

// Cache file templates. Placeholders are substituted from the parameters of
// the load call that owns the template.
const (
	playsCacheTemplate         = "plays.pq"
	tacklesCacheTemplate       = "tackles.pq"
	trackingWeekCacheTemplate  = "tracking_week_{week_num}.pq"
	trackingRangeCacheTemplate = "tracking_week_{week_num_start}_{week_num_end}.pq"
)

const cacheExt = ".pq"

var cacheNamePattern = regexp.MustCompile(`^(plays|tackles|tracking_week_\d+|tracking_week_\d+_\d+)\.pq$`)

type cacheParams map[string]int

// CacheFile describes a cache artifact in the season directory.
type CacheFile struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

func cacheFileName(template string, params cacheParams) (string, error) {
	name := template
	for key, value := range params {
		name = strings.ReplaceAll(name, "{"+key+"}", strconv.Itoa(value))
	}
	if strings.ContainsAny(name, "{}") {
		return "", fmt.Errorf("cache template %q: unresolved placeholder in %q", template, name)
	}
	return name, nil
}

// readThrough returns the cached table named by template when present.
// Otherwise it computes the table, persists it, and returns it. Cache files
// are never invalidated; remove them with ClearCache when sources change.
func readThrough[T any](l *Loader, template string, params cacheParams, compute func() ([]T, error)) ([]T, error) {
	name, err := cacheFileName(template, params)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(l.dir, name)

	rows, err := readCache[T](path)
	if err == nil {
		l.logger.Debug("cache hit",
			logging.String("cache_file", name),
			logging.Int("rows", len(rows)))
		return rows, nil
	}
	if !errors.Is(err, errCacheMiss) {
		logging.WarnWithContext(l.logger, "cache file unreadable", "cache_read_failed",
			logging.String("cache_file", name),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run `nflvis cache clear` to rebuild from CSV"),
			logging.String(logging.FieldImpact, "table was not loaded"))
		return nil, fmt.Errorf("read cache %s: %w", name, err)
	}

	l.logger.Debug("cache miss", logging.String("cache_file", name))
	rows, err = compute()
	if err != nil {
		return nil, err
	}
	if err := writeCache(path, rows); err != nil {
		return nil, fmt.Errorf("write cache %s: %w", name, err)
	}
	l.logger.Info("wrote cache file",
		logging.String("cache_file", name),
		logging.Int("rows", len(rows)))
	return rows, nil
}

func readCache[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errCacheMiss
		}
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat cache: %w", err)
	}
	rows, err := parquet.Read[T](file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("decode parquet: %w", err)
	}
	return rows, nil
}

// writeCache writes rows atomically so an interrupted write never leaves a
// truncated cache file that later reads would reject.
func writeCache[T any](path string, rows []T) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		if err := parquet.Write(w, rows, parquet.Compression(&parquet.Snappy)); err != nil {
			return fmt.Errorf("encode parquet: %w", err)
		}
		return nil
	})
}

// CacheFiles lists cache artifacts in the season directory, sorted by name.
func (l *Loader) CacheFiles() ([]CacheFile, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: l.dir}
		}
		return nil, fmt.Errorf("read season directory: %w", err)
	}
	var files []CacheFile
	for _, entry := range entries {
		if entry.IsDir() || !cacheNamePattern.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, CacheFile{
			Name:       entry.Name(),
			Path:       filepath.Join(l.dir, entry.Name()),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ClearCache removes the named cache files, or every cache file when no
// names are given. It returns the names it removed. Names that are not cache
// artifacts are rejected so raw CSVs can never be deleted.
func (l *Loader) ClearCache(names ...string) ([]string, error) {
	if len(names) == 0 {
		files, err := l.CacheFiles()
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			names = append(names, f.Name)
		}
	}

	removed := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if !strings.HasSuffix(name, cacheExt) {
			name += cacheExt
		}
		if !cacheNamePattern.MatchString(name) {
			return removed, fmt.Errorf("clear cache: %q is not a cache file name", name)
		}
		err := os.Remove(filepath.Join(l.dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed = append(removed, name)
	}
	if len(removed) > 0 {
		l.logger.Info("cleared cache files", logging.Int("count", len(removed)))
	}
	return removed, nil
}
