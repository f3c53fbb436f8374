package gdp

import (
	"context"
	"errors"
	"fmt"

	"gdpetl-backend/lib/restyutil"
	"gdpetl-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("gdpetl.lib.scrapers.gdp")

// DefaultURL is an archived copy of the Wikipedia "List of countries by GDP
// (nominal)" page, the table layout Extract expects is pinned to it.
const DefaultURL = "https://web.archive.org/web/20230902185326/https://en.wikipedia.org/wiki/List_of_countries_by_GDP_%28nominal%29"

var ErrStatus = errors.New("unexpected response status")

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// Output receives a dump of every HTTP exchange, it may be nil.
	Output restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	telemetry.InstrumentResty(client, "scrapers/gdp/http")
	restyutil.InstrumentClient(client, opts.Output)
	return &Client{Http: client}
}

// Fetch issues a single GET to `link` and returns the body as text. there is
// no retry, a transport failure or a non-2xx status is returned as an error.
func (c *Client) Fetch(ctx context.Context, link string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return "", err
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "non-2xx response")
		return "", fmt.Errorf("%w: GET %s: %s", ErrStatus, link, res.Status())
	}

	span.SetAttributes(attribute.Int("body_size", len(res.Body())))
	return string(res.Body()), nil
}
