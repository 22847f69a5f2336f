package hltv

import (
	"bytes"
	"context"
	"testing"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed match_page_test.html
var matchPageTest []byte

func parseDoc(t *testing.T, markup []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParseMatchStats(t *testing.T) {
	doc := parseDoc(t, matchPageTest)

	stats := parseMatchStats(context.Background(), doc)

	expected := MatchStats{
		Teams: []TeamStats{
			{
				TeamName:  "TeamA",
				TableType: "table totalstats",
				Players: []PlayerRow{
					{
						Player:    "Alan 'alpha' Ames alpha",
						KD:        "20-15",
						PlusMinus: "+5",
						ADR:       "85.3",
						KAST:      "74.1%",
						Rating:    "1.21",
					},
					{
						Player:    "bravo",
						KD:        "15-18",
						PlusMinus: "-3",
						ADR:       "70.0",
						KAST:      "66.7%",
						Rating:    "0.94",
					},
				},
			},
			{
				TeamName:  "Unknown",
				TableType: "table ctstats",
				Players: []PlayerRow{
					{
						Player:    "N/A",
						KD:        "9-9",
						PlusMinus: "0",
						ADR:       "60.2",
						KAST:      "70.0%",
						Rating:    "1.00",
					},
				},
			},
		},
	}

	diff := cmp.Diff(expected, stats)
	if diff != "" {
		t.Fatalf("unexpected parse result (-want +got):\n%s", diff)
	}
}

// the tstats table in the fixture has no header row, so it cannot identify a
// team and must be skipped whole, player rows and all
func TestParseMatchStatsSkipsHeaderlessTable(t *testing.T) {
	doc := parseDoc(t, matchPageTest)

	stats := parseMatchStats(context.Background(), doc)
	for _, team := range stats.Teams {
		require.NotEqual(t, "table tstats", team.TableType)
	}
}

// the per-map tab in the fixture nests a table inside #all-content but not
// as a direct child, its rows must never leak into the combined stats
func TestParseMatchStatsIgnoresNestedMapTables(t *testing.T) {
	doc := parseDoc(t, matchPageTest)

	stats := parseMatchStats(context.Background(), doc)
	for _, team := range stats.Teams {
		for _, player := range team.Players {
			require.NotEqual(t, "10-7", player.KD)
		}
	}
}

func TestParseMatchStatsNoContainer(t *testing.T) {
	doc := parseDoc(t, []byte(
		`<html><body><div class="teamsBox">nothing to see</div></body></html>`,
	))

	stats := parseMatchStats(context.Background(), doc)
	require.Empty(t, stats.Teams)
}

func TestParseMatchStatsNoAllMapsTab(t *testing.T) {
	doc := parseDoc(t, []byte(
		`<html><body><div class="matchstats"><div class="stats-content" id="1-content"></div></div></body></html>`,
	))

	stats := parseMatchStats(context.Background(), doc)
	require.Empty(t, stats.Teams)
}

func TestIsPlayerRow(t *testing.T) {
	doc := parseDoc(t, []byte(
		`<table>
			<tr class="header-row"><td>header</td></tr>
			<tr class=""><td>player</td></tr>
			<tr><td>unannotated</td></tr>
		</table>`,
	))

	rows := doc.Find("tr")
	require.Equal(t, 3, rows.Length())
	require.False(t, isPlayerRow(rows.Eq(0)))
	require.True(t, isPlayerRow(rows.Eq(1)))
	// no class attribute at all is not the same as an empty one
	require.False(t, isPlayerRow(rows.Eq(2)))
}
