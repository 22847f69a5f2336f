package restyutil

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// Output receives a formatted dump of one HTTP exchange.
type Output interface {
	Write(id string, contents string)
}

// InstrumentClient dumps every request/response pair made by client to the
// given output. `output` can be nil, in which case this is a no-op.
func InstrumentClient(client *resty.Client, output Output) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := strconv.FormatUint(atomic.AddUint64(&idcounter, 1), 10)
		output.Write(id, formatExchange(res))
		return nil
	})
}

func formatExchange(res *resty.Response) string {
	var b strings.Builder

	req := res.Request
	fmt.Fprintf(&b, "%s %s\n", req.Method, req.URL)
	for header, values := range req.Header {
		for _, v := range values {
			fmt.Fprintf(&b, "> %s: %s\n", header, v)
		}
	}

	fmt.Fprintf(&b, "\n%s (%s)\n", res.Status(), res.Time())
	for header, values := range res.Header() {
		for _, v := range values {
			fmt.Fprintf(&b, "< %s: %s\n", header, v)
		}
	}

	b.WriteString("\n")
	b.Write(res.Body())
	b.WriteString("\n")

	return b.String()
}
