package hltv

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hltvscrape/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PlayerRow is one player's line in one statistics table. Every stat is kept
// as the raw display text, locale formatting and all; turning them into
// numbers is the consumer's problem.
type PlayerRow struct {
	Player    string
	KD        string
	PlusMinus string
	ADR       string
	KAST      string
	Rating    string
}

// TeamStats is one team's table in one variant (combined, CT side, T side).
// TableType carries the table's class attribute verbatim, e.g.
// "table totalstats".
type TeamStats struct {
	TeamName  string
	TableType string
	Players   []PlayerRow
}

// MatchStats is everything extracted from one match page. Teams is empty
// (not an error) when the page carries no parsable statistics.
type MatchStats struct {
	MatchURL string
	Teams    []TeamStats
}

// statColumn maps a cell position in a player row to its meaning. When the
// site reorders columns this mapping is the only thing to edit.
type statColumn int

const (
	colPlayer statColumn = iota
	colKD
	colPlusMinus
	colADR
	colKAST
	colRating

	statColumnCount
)

// isPlayerRow reports whether a table row is a genuine player line. Player
// rows carry a class attribute that is exactly empty, anything annotated
// (header-row and friends) is noise. Known fragility: if the site ever adds
// a class to player rows this will miscount silently.
func isPlayerRow(row *goquery.Selection) bool {
	class, exists := row.Attr("class")
	return exists && class == ""
}

// FetchMatchStats fetches one match detail page and extracts its
// "all maps combined" statistics tables. Missing page structure degrades to
// a partial or empty record; only transport failures and non-2xx responses
// are returned as errors.
func (c *Client) FetchMatchStats(ctx context.Context, link string) (MatchStats, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMatchStats")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch match page")
		return MatchStats{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch match page: unexpected status %s", res.Status())
		span.SetStatus(codes.Error, err.Error())
		return MatchStats{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse match page html")
		return MatchStats{}, err
	}

	stats := parseMatchStats(ctx, doc)
	matchesScraped.Add(ctx, 1)
	return stats, nil
}

// parseMatchStats walks container -> "all maps" tab -> direct child tables.
// Every lookup in the chain fails soft at its own level: a missing node
// skips that one unit of work instead of aborting the run.
func parseMatchStats(ctx context.Context, doc *goquery.Document) MatchStats {
	stats := MatchStats{}

	container := doc.Find("div.matchstats").First()
	if container.Length() == 0 {
		slog.DebugContext(ctx, "match page has no statistics container")
		return stats
	}

	// only the combined tab, per-map stats live in their own tab contents
	allContent := container.Find("div#all-content").First()
	if allContent.Length() == 0 {
		slog.DebugContext(ctx, "match page has no all-maps tab content")
		return stats
	}

	// direct children only, tables nested inside per-map sections would
	// otherwise double-count rows in the wrong scope
	allContent.ChildrenFiltered("table").Each(func(_ int, tbl *goquery.Selection) {
		team, ok := parseStatsTable(ctx, tbl)
		if !ok {
			return
		}
		stats.Teams = append(stats.Teams, team)
	})

	return stats
}

// parseStatsTable extracts one team's block from one statistics table.
// A table without a header row identifies no team at all and is skipped
// whole; a header row without a team link still yields a block, under the
// "Unknown" sentinel.
func parseStatsTable(ctx context.Context, tbl *goquery.Selection) (TeamStats, bool) {
	header := tbl.Find("tr.header-row").First()
	if header.Length() == 0 {
		return TeamStats{}, false
	}

	teamName := "Unknown"
	if teamLink := header.Find("a.teamName").First(); teamLink.Length() > 0 {
		teamName = htmlutil.CleanText(teamLink.Text())
	}

	team := TeamStats{
		TeamName:  teamName,
		TableType: tbl.AttrOr("class", ""),
	}

	tbl.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if !isPlayerRow(row) {
			return
		}
		player, ok := parsePlayerRow(row)
		if !ok {
			return
		}
		team.Players = append(team.Players, player)
		playerRowsParsed.Add(ctx, 1)
	})

	return team, true
}

// parsePlayerRow maps the row's cells through the statColumn table. Rows
// with fewer cells than the mapping needs are malformed and skipped.
func parsePlayerRow(row *goquery.Selection) (PlayerRow, bool) {
	cells := row.Find("td")
	if cells.Length() < int(statColumnCount) {
		return PlayerRow{}, false
	}

	cell := func(col statColumn) string {
		return strings.TrimSpace(cells.Eq(int(col)).Text())
	}

	player := "N/A"
	if link := cells.Eq(int(colPlayer)).Find("a[href]").First(); link.Length() > 0 {
		player = htmlutil.CleanText(link.Text())
	}

	return PlayerRow{
		Player:    player,
		KD:        cell(colKD),
		PlusMinus: cell(colPlusMinus),
		ADR:       cell(colADR),
		KAST:      cell(colKAST),
		Rating:    cell(colRating),
	}, true
}
