// Package dataset loads the Big Data Bowl season tables (games, players,
// plays, tackles, and weekly tracking) from a season directory.
//
// Every loader returns a Table: typed rows plus the level set of each column
// the dataset declares categorical. Plays, tackles, and tracking tables are
// memoized as parquet files next to the raw CSVs (plays.pq, tackles.pq,
// tracking_week_<N>.pq, tracking_week_<A>_<B>.pq). A cache file, once
// written, is returned verbatim on every later call; nothing detects a stale
// cache. Use Loader.ClearCache (or `nflvis cache clear`) after replacing the
// raw files.
package dataset
