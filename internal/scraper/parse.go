package scraper

import (
	"strconv"
	"strings"
)

// extractGameID pulls the numeric game identifier out of a schedule link
// href. Game links end in a slug whose final hyphen-separated token is the
// id, e.g. "/game/lakers-vs-celtics-0042400123". Returns "" when the href
// does not carry one.
func extractGameID(href string) string {
	cleaned := strings.Trim(strings.TrimSpace(href), "/")
	if cleaned == "" {
		return ""
	}
	if idx := strings.LastIndex(cleaned, "/"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	if idx := strings.LastIndex(cleaned, "-"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	if cleaned == "" {
		return ""
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return cleaned
}

// parseStatInt reads a counting stat cell. Blank and placeholder cells
// ("-", "--") fail integer parsing and report false.
func parseStatInt(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parsePercent reads a shooting percentage cell into a 0-based fraction.
// Box scores render the value either as a fraction ("0.452") or as a
// percentage ("45.2%"); values above 1 are treated as percentages and
// scaled down. The result is passed through unclamped.
func parsePercent(text string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "%", ""))
	if cleaned == "" || cleaned == "-" || cleaned == "--" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if v > 1 {
		v /= 100
	}
	return v, true
}
