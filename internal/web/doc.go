// Package web serves the tour date calendar over HTTP.
//
// The server renders a browsable twelve month grid at / and exposes the
// same data as JSON under /api. It only reads from the store; scans are
// run separately by the CLI.
package web
