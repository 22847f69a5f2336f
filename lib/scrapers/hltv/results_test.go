package hltv

import (
	"bytes"
	"testing"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed results_page_test.html
var resultsPageTest []byte

func TestParseResultsPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(resultsPageTest))
	if err != nil {
		t.Fatal(err)
	}

	urls := parseResultsPage(doc, "https://www.hltv.org")

	// the anchorless container contributes nothing, relative hrefs are
	// resolved against the origin, absolute ones pass through untouched
	require.Equal(t, []string{
		"https://www.hltv.org/matches/1/a",
		"https://example.test/matches/2/b",
	}, urls)
}

func TestParseResultsPageEmpty(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(
		`<html><body><div class="results-all"></div></body></html>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	urls := parseResultsPage(doc, "https://www.hltv.org")
	require.Empty(t, urls)
}
