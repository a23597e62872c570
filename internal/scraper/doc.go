// Package scraper discovers NBA games and extracts tour date candidates
// from nba.com markup.
//
// The work is split across three pieces. Client fetches raw documents with
// a politeness delay and a bounded timeout. Extractor turns schedule pages
// into game references and box score pages into per-player shooting lines,
// skipping whatever it cannot parse instead of failing the document.
// Scanner walks a date range wiring the two together while deduplicating
// game ids within and across runs.
package scraper
