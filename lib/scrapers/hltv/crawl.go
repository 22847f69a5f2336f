package hltv

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
)

type CrawlOptions struct {
	// inclusive offset range walked in OffsetStep increments
	StartOffset int
	EndOffset   int
	OffsetStep  int
	// politeness delay between consecutive match fetches
	Delay time.Duration
	// called after each listing page, may be nil
	OnProgress func(offset int, found int)
}

// DefaultCrawlOptions covers the 11 listing pages at offsets 0..1000 with a
// one second politeness delay.
func DefaultCrawlOptions() CrawlOptions {
	return CrawlOptions{
		StartOffset: 0,
		EndOffset:   1000,
		OffsetStep:  100,
		Delay:       time.Second,
	}
}

// Crawl walks every listing page in the configured offset range and scrapes
// stats for every match url discovered, in discovery order. Failing to
// scrape one match logs the url and moves on; failing to fetch a listing
// page aborts the whole crawl. Duplicate urls across overlapping listing
// pages are scraped again, there is no dedup.
func (c *Client) Crawl(ctx context.Context, opts CrawlOptions) ([]MatchStats, error) {
	ctx, span := tracer.Start(ctx, "client:Crawl")
	defer span.End()

	var all []MatchStats
	for offset := opts.StartOffset; offset <= opts.EndOffset; offset += opts.OffsetStep {
		slog.InfoContext(ctx, "fetching results page", "offset", offset)
		urls, err := c.FetchResultsPage(ctx, offset)
		if err != nil {
			span.SetStatus(codes.Error, "listing fetch failed")
			return nil, err
		}
		slog.InfoContext(ctx, "found matches", "offset", offset, "count", len(urls))
		if opts.OnProgress != nil {
			opts.OnProgress(offset, len(urls))
		}

		for _, link := range urls {
			stats, err := c.FetchMatchStats(ctx, link)
			if err != nil {
				slog.ErrorContext(ctx, "failed to scrape match", "url", link, "err", err)
			} else {
				stats.MatchURL = link
				all = append(all, stats)
			}

			// sleep even after a failure, the server doesn't care
			// why we asked
			select {
			case <-ctx.Done():
				return all, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
	}

	return all, nil
}
