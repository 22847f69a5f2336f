package export

import (
	"bytes"
	"testing"

	"hltvscrape/lib/scrapers/hltv"

	"github.com/stretchr/testify/require"
)

func testMatches() []hltv.MatchStats {
	return []hltv.MatchStats{
		{
			MatchURL: "https://www.hltv.org/matches/1/a",
			Teams: []hltv.TeamStats{
				{
					TeamName:  "TeamA",
					TableType: "table totalstats",
					Players: []hltv.PlayerRow{
						{Player: "alpha", KD: "20-15", PlusMinus: "+5", ADR: "85.3", KAST: "74.1%", Rating: "1.21"},
						{Player: "bravo", KD: "15-18", PlusMinus: "-3", ADR: "70.0", KAST: "66.7%", Rating: "0.94"},
					},
				},
				{
					TeamName:  "TeamB",
					TableType: "table ctstats",
					Players: []hltv.PlayerRow{
						{Player: "charlie", KD: "9-9", PlusMinus: "0", ADR: "60.2", KAST: "70.0%", Rating: "1.00"},
					},
				},
			},
		},
		{
			// a match whose page carried no parsable statistics
			MatchURL: "https://www.hltv.org/matches/2/b",
		},
	}
}

func TestFlattenCount(t *testing.T) {
	matches := testMatches()

	expected := 0
	for _, match := range matches {
		for _, team := range match.Teams {
			expected += len(team.Players)
		}
	}

	rows := Flatten(matches)
	require.Len(t, rows, expected)
}

func TestFlattenOrderAndProjection(t *testing.T) {
	rows := Flatten(testMatches())
	require.Len(t, rows, 3)

	require.Equal(t, Row{
		MatchURL:  "https://www.hltv.org/matches/1/a",
		TeamName:  "TeamA",
		TableType: "table totalstats",
		Player:    "alpha",
		KD:        "20-15",
		PlusMinus: "+5",
		ADR:       "85.3",
		KAST:      "74.1%",
		Rating:    "1.21",
	}, rows[0])
	require.Equal(t, "bravo", rows[1].Player)
	require.Equal(t, "TeamB", rows[2].TeamName)
}

func TestFlattenSharedLabels(t *testing.T) {
	rows := Flatten(testMatches())

	// both TeamA players share the team name and variant label
	require.Equal(t, rows[0].TeamName, rows[1].TeamName)
	require.Equal(t, rows[0].TableType, rows[1].TableType)
}

func TestWriteCsv(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCsv(&buf, Flatten(testMatches()))
	if err != nil {
		t.Fatal(err)
	}

	expected := "match_url,teamName,tableType,player,kd,plus_minus,adr,kast,rating\n" +
		"https://www.hltv.org/matches/1/a,TeamA,table totalstats,alpha,20-15,+5,85.3,74.1%,1.21\n" +
		"https://www.hltv.org/matches/1/a,TeamA,table totalstats,bravo,15-18,-3,70.0,66.7%,0.94\n" +
		"https://www.hltv.org/matches/1/a,TeamB,table ctstats,charlie,9-9,0,60.2,70.0%,1.00\n"
	require.Equal(t, expected, buf.String())
}

func TestWriteCsvIdempotent(t *testing.T) {
	rows := Flatten(testMatches())

	var first bytes.Buffer
	err := WriteCsv(&first, rows)
	if err != nil {
		t.Fatal(err)
	}
	var second bytes.Buffer
	err = WriteCsv(&second, rows)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteCsvEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCsv(&buf, []Row{{Player: "solo"}})
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t,
		"match_url,teamName,tableType,player,kd,plus_minus,adr,kast,rating\n"+
			",,,solo,,,,,\n",
		buf.String())
}
