package hltv

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchResultsPage fetches the results listing at the given pagination
// offset and returns the match detail urls it links to, in page order.
//
// Unlike match fetches, a failed listing fetch is returned as a hard error:
// silently losing a whole listing page would shrink the dataset without any
// signal, and a non-2xx here usually means rate limiting that the caller
// should know about.
func (c *Client) FetchResultsPage(ctx context.Context, offset int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchResultsPage")
	defer span.End()
	span.SetAttributes(attribute.Int("offset", offset))

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get("/results")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch results page")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch results page offset=%d: unexpected status %s", offset, res.Status())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse results page html")
		return nil, err
	}

	urls := parseResultsPage(doc, c.origin())
	span.SetAttributes(attribute.Int("matches", len(urls)))
	return urls, nil
}

// parseResultsPage pulls the match detail url out of every result container
// on a listing page. Containers without a primary anchor contribute nothing.
// Site-relative hrefs are resolved against origin, anything else is kept
// as-is.
func parseResultsPage(doc *goquery.Document, origin string) []string {
	var urls []string
	doc.Find("div.result-con").Each(func(_ int, con *goquery.Selection) {
		anchor := con.Find("a.a-reset").First()
		if anchor.Length() == 0 {
			return
		}

		href := anchor.AttrOr("href", "")
		if strings.HasPrefix(href, "/") {
			href = origin + href
		}
		urls = append(urls, href)
	})
	return urls
}
