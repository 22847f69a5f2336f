// Package export flattens scraped match statistics into the csv artifact
// produced at the end of a run.
package export

import (
	"encoding/csv"
	"io"
	"os"

	"hltvscrape/lib/scrapers/hltv"
)

// Row is the fully denormalized export unit, one per
// (match, team table, player) combination. It adds nothing that isn't
// already in the match record.
type Row struct {
	MatchURL  string
	TeamName  string
	TableType string
	Player    string
	KD        string
	PlusMinus string
	ADR       string
	KAST      string
	Rating    string
}

// Header is the fixed csv column order.
var Header = []string{
	"match_url",
	"teamName",
	"tableType",
	"player",
	"kd",
	"plus_minus",
	"adr",
	"kast",
	"rating",
}

// Flatten projects every player row of every team table of every match into
// a flat slice, preserving input order at all three levels. The row count is
// always the sum over matches of (team tables x their player rows).
func Flatten(matches []hltv.MatchStats) []Row {
	var rows []Row
	for _, match := range matches {
		for _, team := range match.Teams {
			for _, player := range team.Players {
				rows = append(rows, Row{
					MatchURL:  match.MatchURL,
					TeamName:  team.TeamName,
					TableType: team.TableType,
					Player:    player.Player,
					KD:        player.KD,
					PlusMinus: player.PlusMinus,
					ADR:       player.ADR,
					KAST:      player.KAST,
					Rating:    player.Rating,
				})
			}
		}
	}
	return rows
}

// WriteCsv writes the header line followed by one line per row.
func WriteCsv(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	err := writer.Write(Header)
	if err != nil {
		return err
	}
	for _, row := range rows {
		err := writer.Write([]string{
			row.MatchURL,
			row.TeamName,
			row.TableType,
			row.Player,
			row.KD,
			row.PlusMinus,
			row.ADR,
			row.KAST,
			row.Rating,
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCsvFile is WriteCsv against a freshly created (or truncated) file.
func WriteCsvFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	err = WriteCsv(file, rows)
	if err != nil {
		return err
	}
	return file.Sync()
}
