package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/tourdate"
)

// CSS hooks on nba.com pages. The class names carry build hashes and
// change when the site ships a redesign, so they live in one place.
const (
	gameCardSelector   = `a[data-id='nba:games:main:game:card']`
	boxSectionSelector = "section.GameBoxscore_gbTableSection__zTOUg"
	playerRowSelector  = "tbody tr"
	totalsRowSelector  = "span.GameBoxscoreTable_totals__tM8PG"
	playerNameSelector = ".GameBoxscoreTablePlayer_gbpNameFull__cf_sn"
)

// ShootingLine is one player's field goal line from a box score, with
// both teams already resolved.
type ShootingLine struct {
	PlayerName   string
	TeamAbbr     string
	OpponentAbbr string
	Made         int
	Attempted    int
	Percent      float64
}

// Extractor turns fetched documents into structured records. The scanner
// depends on this interface so tests can substitute canned extractions.
type Extractor interface {
	GameReferences(document string, asOf tourdate.Date) []tourdate.GameReference
	ShootingLines(document string) []ShootingLine
}

// NBAExtractor parses nba.com schedule and box score markup.
type NBAExtractor struct{}

// GameReferences lists the games linked from a schedule page, deduplicated
// by game id. The href is kept as found; callers resolve it to an absolute
// URL. Links without a recognisable game id are skipped.
func (NBAExtractor) GameReferences(document string, asOf tourdate.Date) []tourdate.GameReference {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		logger.Warn("parsing schedule document", logger.Fields{"error": err.Error()})
		return nil
	}

	var refs []tourdate.GameReference
	seen := make(map[string]bool)
	doc.Find(gameCardSelector).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		gameID := extractGameID(href)
		if gameID == "" || seen[gameID] {
			return
		}
		seen[gameID] = true
		refs = append(refs, tourdate.GameReference{
			GameID: gameID,
			URL:    href,
			Date:   asOf,
		})
	})
	return refs
}

// ShootingLines reads every player row out of a box score page. Teams are
// matched by the section heading; a section whose heading names an unknown
// team is skipped with a warning. A row is dropped when its name element
// is missing, a stat cell fails to parse, or it records zero attempts.
// Opponents are assigned by pairing the two team sections; if only one
// section yields players the opponent is left as the placeholder.
func (NBAExtractor) ShootingLines(document string) []ShootingLine {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		logger.Warn("parsing box score document", logger.Fields{"error": err.Error()})
		return nil
	}

	type teamSection struct {
		abbr  string
		lines []ShootingLine
	}
	var sections []teamSection

	doc.Find(boxSectionSelector).Each(func(_ int, section *goquery.Selection) {
		heading := section.Find("h2").First()
		if heading.Length() == 0 {
			return
		}
		teamName := strings.TrimSpace(heading.Text())
		abbr, ok := tourdate.TeamAbbreviation(teamName)
		if !ok {
			logger.Warn("skipping box score section for unknown team", logger.Fields{"team": teamName})
			return
		}

		var lines []ShootingLine
		section.Find(playerRowSelector).Each(func(_ int, row *goquery.Selection) {
			if row.Find(totalsRowSelector).Length() > 0 {
				return
			}
			cells := row.Find("td")
			if cells.Length() < 5 {
				return
			}

			nameEl := cells.Eq(0).Find(playerNameSelector).First()
			if nameEl.Length() == 0 {
				return
			}
			playerName := strings.TrimSpace(nameEl.Text())

			made, ok := parseStatInt(cells.Eq(2).Text())
			if !ok {
				return
			}
			attempted, ok := parseStatInt(cells.Eq(3).Text())
			if !ok {
				return
			}
			pct, ok := parsePercent(cells.Eq(4).Text())
			if !ok {
				return
			}
			if attempted == 0 {
				return
			}

			lines = append(lines, ShootingLine{
				PlayerName: playerName,
				TeamAbbr:   abbr,
				Made:       made,
				Attempted:  attempted,
				Percent:    pct,
			})
		})
		if len(lines) == 0 {
			return
		}
		sections = append(sections, teamSection{abbr: abbr, lines: lines})
	})

	var out []ShootingLine
	for i := range sections {
		opponent := tourdate.UnknownOpponent
		if len(sections) == 2 {
			opponent = sections[1-i].abbr
		}
		for _, line := range sections[i].lines {
			line.OpponentAbbr = opponent
			out = append(out, line)
		}
	}
	return out
}
