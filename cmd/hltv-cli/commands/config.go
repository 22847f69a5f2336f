package commands

import (
	"os"
	"time"

	"hltvscrape/lib/configutil"
	"hltvscrape/lib/restyutil"
	"hltvscrape/lib/scrapers/hltv"
	"hltvscrape/lib/serviceutil"
)

type Config struct {
	BaseUrl      string `json:"base_url"`
	StartOffset  int    `json:"start_offset"`
	EndOffset    int    `json:"end_offset"`
	OffsetStep   int    `json:"offset_step"`
	DelaySeconds int    `json:"delay_seconds"`
	Output       string `json:"output"`
}

// loadConfig reads config.json5 if present, missing keys (or a missing file)
// fall back to the fixed defaults of the crawl design.
func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	defaults := hltv.DefaultCrawlOptions()
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = hltv.DefaultBaseUrl
	}
	if cfg.EndOffset == 0 {
		cfg.StartOffset = defaults.StartOffset
		cfg.EndOffset = defaults.EndOffset
	}
	if cfg.OffsetStep == 0 {
		cfg.OffsetStep = defaults.OffsetStep
	}
	if cfg.DelaySeconds == 0 {
		cfg.DelaySeconds = int(defaults.Delay / time.Second)
	}
	if cfg.Output == "" {
		cfg.Output = "match_stats.csv"
	}
	return cfg
}

func createClient(cfg Config, debugHttp string) *hltv.Client {
	client, err := hltv.NewClient(hltv.ClientOptions{
		BaseUrl: cfg.BaseUrl,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize hltv client", err)
	}

	if debugHttp != "" {
		output, err := restyutil.NewFilesystemOutput(debugHttp)
		if err != nil {
			serviceutil.Fatal("failed to create http debug output", err)
		}
		client.SetDebugOutput(output)
	}

	return client
}
