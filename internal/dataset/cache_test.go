package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"nflvis/internal/logging"
	"nflvis/internal/testsupport"
)

func TestCacheFileName(t *testing.T) {
	tests := []struct {
		template string
		params   cacheParams
		want     string
		wantErr  bool
	}{
		{template: playsCacheTemplate, want: "plays.pq"},
		{template: trackingWeekCacheTemplate, params: cacheParams{"week_num": 3}, want: "tracking_week_3.pq"},
		{template: trackingRangeCacheTemplate, params: cacheParams{"week_num_start": 1, "week_num_end": 9}, want: "tracking_week_1_9.pq"},
		{template: trackingWeekCacheTemplate, wantErr: true},
	}
	for _, tt := range tests {
		got, err := cacheFileName(tt.template, tt.params)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("cacheFileName(%q) expected error", tt.template)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("cacheFileName(%q) = %q, %v; want %q", tt.template, got, err, tt.want)
		}
	}
}

func TestPlaysCacheHitSkipsSource(t *testing.T) {
	loader := newFixtureLoader(t)

	first, err := loader.LoadPlays()
	if err != nil {
		t.Fatalf("LoadPlays: %v", err)
	}
	if _, err := os.Stat(filepath.Join(loader.Dir(), "plays.pq")); err != nil {
		t.Fatalf("expected plays.pq: %v", err)
	}
	if err := os.Remove(filepath.Join(loader.Dir(), "plays.csv")); err != nil {
		t.Fatalf("remove source: %v", err)
	}

	second, err := loader.LoadPlays()
	if err != nil {
		t.Fatalf("LoadPlays from cache: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached plays differ:\nfirst=%+v\nsecond=%+v", first.Rows, second.Rows)
	}
}

func TestTrackingCacheHitSkipsSource(t *testing.T) {
	loader := newFixtureLoader(t)

	first, err := loader.LoadTrackingWeek(1)
	if err != nil {
		t.Fatalf("LoadTrackingWeek: %v", err)
	}
	if err := os.Remove(filepath.Join(loader.Dir(), "tracking_week_1.csv")); err != nil {
		t.Fatalf("remove source: %v", err)
	}
	second, err := loader.LoadTrackingWeek(1)
	if err != nil {
		t.Fatalf("LoadTrackingWeek from cache: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("cached tracking differs from source")
	}
}

func TestCacheIsNeverInvalidated(t *testing.T) {
	loader := newFixtureLoader(t)

	if _, err := loader.LoadTackles(); err != nil {
		t.Fatalf("LoadTackles: %v", err)
	}
	testsupport.WriteText(t, filepath.Join(loader.Dir(), "tackles.csv"),
		"gameId,playId,nflId,tackle,assist,forcedFumble,pff_missedTackle\n1,1,1,1,0,0,0\n")

	tackles, err := loader.LoadTackles()
	if err != nil {
		t.Fatalf("LoadTackles: %v", err)
	}
	if tackles.Len() != 2 {
		t.Fatalf("expected stale cache with 2 rows, got %d", tackles.Len())
	}
}

func TestUnreadableCacheIsAnError(t *testing.T) {
	var logs bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &logs})
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	testsupport.WriteSeason(t, dir)
	loader := NewLoader(dir, logger)
	cachePath := filepath.Join(loader.Dir(), "plays.pq")
	testsupport.WriteJunk(t, cachePath, 64)

	_, err = loader.LoadPlays()
	if err == nil {
		t.Fatal("expected error for corrupt cache")
	}
	line := logs.String()
	for _, want := range []string{"cache file unreadable", "cache_file=plays.pq", "event_type=cache_read_failed", "error="} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in warning, got %q", want, line)
		}
	}
	if errors.Is(err, ErrMissingFile) {
		t.Fatalf("corrupt cache reported as missing: %v", err)
	}
	info, statErr := os.Stat(cachePath)
	if statErr != nil || info.Size() != 64 {
		t.Fatalf("corrupt cache was replaced: %v", statErr)
	}
}

func TestCacheFilesAndClear(t *testing.T) {
	loader := newFixtureLoader(t)

	if _, err := loader.LoadPlays(); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadTrackingWeek(1); err != nil {
		t.Fatal(err)
	}

	files, err := loader.CacheFiles()
	if err != nil {
		t.Fatalf("CacheFiles: %v", err)
	}
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		if f.SizeBytes <= 0 {
			t.Fatalf("cache file %s has size %d", f.Name, f.SizeBytes)
		}
	}
	if !reflect.DeepEqual(names, []string{"plays.pq", "tracking_week_1.pq"}) {
		t.Fatalf("cache files = %v", names)
	}

	removed, err := loader.ClearCache("plays")
	if err != nil || !reflect.DeepEqual(removed, []string{"plays.pq"}) {
		t.Fatalf("ClearCache(plays) = %v, %v", removed, err)
	}
	if _, err := loader.ClearCache("games.csv"); err == nil {
		t.Fatal("expected ClearCache to reject a source file")
	}

	removed, err = loader.ClearCache()
	if err != nil || !reflect.DeepEqual(removed, []string{"tracking_week_1.pq"}) {
		t.Fatalf("ClearCache() = %v, %v", removed, err)
	}
	if _, err := os.Stat(filepath.Join(loader.Dir(), "games.csv")); err != nil {
		t.Fatalf("source file removed: %v", err)
	}
}
