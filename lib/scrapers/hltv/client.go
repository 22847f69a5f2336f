package hltv

import (
	"net/http/cookiejar"
	"net/url"
	"time"

	"hltvscrape/lib/restyutil"
	"hltvscrape/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/hltv")
var meter = otel.Meter("scrapers/hltv")

var matchesScraped, _ = meter.Int64Counter("hltv.matches_scraped")
var playerRowsParsed, _ = meter.Int64Counter("hltv.player_rows_parsed")

const DefaultBaseUrl = "https://www.hltv.org"

// Client is the single shared HTTP client for one run, constructed once and
// reused for every listing and match fetch.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to 30 seconds
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/hltv/http")

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
	return c, nil
}

// SetDebugOutput dumps every HTTP exchange made by the client to output.
func (c *Client) SetDebugOutput(output restyutil.Output) {
	restyutil.InstrumentClient(c.Http, output)
}

// origin returns scheme://host of the base url, the prefix site-relative
// hrefs are resolved against.
func (c *Client) origin() string {
	return c.BaseUrl.Scheme + "://" + c.BaseUrl.Host
}
