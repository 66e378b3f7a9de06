// Package config loads, normalizes, and validates nflvis configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, ./nflvis.toml, or
// ~/.config/nflvis/config.toml. The season directory consumed by the dataset
// loader is derived here from data.root and data.season.
package config
