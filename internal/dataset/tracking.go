package dataset

import (
	"fmt"
	"strconv"
)

// LoadTrackingWeek reads tracking_week_<week>.csv through its week cache.
func (l *Loader) LoadTrackingWeek(week int) (Table[TrackingFrame], error) {
	rows, err := l.trackingWeekRows(week)
	if err != nil {
		return Table[TrackingFrame]{}, err
	}
	return Table[TrackingFrame]{Rows: rows, Categories: makeCategoricals(rows, trackingCategoricals)}, nil
}

// LoadTracking concatenates weeks start..end inclusive in ascending week
// order. Each week is read through its own cache, and the concatenation is
// cached under the range name.
func (l *Loader) LoadTracking(start, end int) (Table[TrackingFrame], error) {
	if start > end {
		return Table[TrackingFrame]{}, fmt.Errorf("tracking weeks: start %d after end %d", start, end)
	}
	params := cacheParams{"week_num_start": start, "week_num_end": end}
	rows, err := readThrough(l, trackingRangeCacheTemplate, params, func() ([]TrackingFrame, error) {
		var all []TrackingFrame
		for week := start; week <= end; week++ {
			rows, err := l.trackingWeekRows(week)
			if err != nil {
				return nil, err
			}
			all = append(all, rows...)
		}
		return all, nil
	})
	if err != nil {
		return Table[TrackingFrame]{}, err
	}
	return Table[TrackingFrame]{Rows: rows, Categories: makeCategoricals(rows, trackingCategoricals)}, nil
}

func (l *Loader) trackingWeekRows(week int) ([]TrackingFrame, error) {
	if week < 1 {
		return nil, fmt.Errorf("tracking week %d: weeks start at 1", week)
	}
	return readThrough(l, trackingWeekCacheTemplate, cacheParams{"week_num": week}, func() ([]TrackingFrame, error) {
		return readCSV[TrackingFrame](l, "tracking_week_"+strconv.Itoa(week)+".csv")
	})
}
