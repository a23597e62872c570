// Package storage persists tour dates in a SQLite database.
//
// The storage package keeps one row per (season, game id, player name);
// rescanning a game replaces the shooting line rather than duplicating the
// row. WAL mode lets the web server keep reading while a scan writes. The
// default database location is ./tourdates.db.
package storage
