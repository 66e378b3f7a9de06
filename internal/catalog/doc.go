// Package catalog keeps a SQLite index of a season's games and plays so
// candidate plays can be found by week, team, or description before they
// are animated.
//
// The catalog is derived data: Index rebuilds it wholesale from loaded
// tables, and a schema change means deleting the file and indexing again.
package catalog
