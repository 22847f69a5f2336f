package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hltvscrape/lib/export"
	"hltvscrape/lib/scrapers/hltv"
	"hltvscrape/lib/serviceutil"
	"hltvscrape/lib/telemetry"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var crawlOut *string
var crawlDebugHttp *string

func init() {
	crawlOut = crawlCmd.Flags().String("out", "", "The csv file to write results to (overrides config).")
	crawlDebugHttp = crawlCmd.Flags().String("debug-http", "", "Dump every http exchange into this directory.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [--out <path/to/output.csv>]",
	Short: "Crawls the configured range of results pages and exports one csv row per player per table.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if *crawlOut != "" {
			cfg.Output = *crawlOut
		}

		client := createClient(cfg, *crawlDebugHttp)

		ctx := serviceutil.SignalContext()
		telemetry.InstrumentPerfStats(ctx)

		spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " crawling results pages..."
		spin.Start()

		t1 := time.Now()
		matches, err := client.Crawl(ctx, hltv.CrawlOptions{
			StartOffset: cfg.StartOffset,
			EndOffset:   cfg.EndOffset,
			OffsetStep:  cfg.OffsetStep,
			Delay:       time.Duration(cfg.DelaySeconds) * time.Second,
			OnProgress: func(offset, found int) {
				spin.Suffix = fmt.Sprintf(" offset %d: %d matches...", offset, found)
			},
		})
		spin.Stop()

		if errors.Is(err, context.Canceled) {
			// interrupted runs still export whatever was collected
			slog.Warn("crawl interrupted, exporting partial results", "matches", len(matches))
		} else if err != nil {
			serviceutil.Fatal("crawl aborted", err)
		}

		rows := export.Flatten(matches)
		err = export.WriteCsvFile(cfg.Output, rows)
		if err != nil {
			serviceutil.Fatal("failed to write csv", err)
		}

		teams := 0
		for _, match := range matches {
			teams += len(match.Teams)
		}

		slog.Info("crawl finished", "seconds", time.Since(t1).Seconds())

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Matches", "Team tables", "Player rows", "Output"})
		t.AppendRow(table.Row{len(matches), teams, len(rows), cfg.Output})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
