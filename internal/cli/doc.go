// Package cli implements the command-line interface for tourdates.
//
// The cli package provides the Cobra-based CLI with a scan command that
// walks the schedule for new tour dates and a slots command that reports
// which calendar cells are still open. It coordinates the scraper, storage,
// and calendar packages and formats results as text or JSON.
package cli
