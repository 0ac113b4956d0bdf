package datacite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/httpclient"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/registries/datacite")

const RegistryName string = "DataCite"

type Client struct {
	apiURL     string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(logger zerolog.Logger, apiURL string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: httpclient.New(timeout),
		log:        logger,
	}
}

func (c *Client) FetchMetadata(ctx context.Context, doi string) (rec *Record, err error) {
	ctx, span := tracer.Start(ctx, "fetch-metadata")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	targetURL := fmt.Sprintf("%s/dois/%s", c.apiURL, doi)

	fetchErr := func(statusCode int, err error) error {
		return domain.FetchError{Registry: RegistryName, URL: targetURL, StatusCode: statusCode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fetchErr(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Add("Accept", "application/vnd.api+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr(0, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.UnsupportedRegistryError{DOI: doi, Registry: RegistryName}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("request failed"))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	rec = &Record{}
	if err = json.Unmarshal(body, rec); err != nil {
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return rec, nil
}
