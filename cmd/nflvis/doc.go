// Package main hosts the nflvis CLI entrypoint and command graph.
//
// The Cobra command tree wraps the dataset loader, its parquet cache, the
// play catalog, and the play animator. It centralizes configuration
// resolution and logger setup so subcommands only translate flags into
// calls on the internal packages and format the results.
package main
