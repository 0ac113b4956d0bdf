package zenodo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/httpclient"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/registries/zenodo")

const RegistryName string = "Zenodo"

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

// FetchMetadata locates the record for a DOI, first through a search and then,
// for DOIs minted by Zenodo, directly by record id.
func (c *Client) FetchMetadata(ctx context.Context, identifier string) (rec *Record, err error) {
	ctx, span := tracer.Start(ctx, "fetch-metadata")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	recordID, searchErr := c.search(ctx, identifier)
	if searchErr != nil {
		log.Warn().Err(searchErr).Str("doi", identifier).Msg("search failed, trying direct lookup")
	} else if recordID != "" {
		return c.Record(ctx, recordID)
	}

	if id, ok := doi.ZenodoRecordID(identifier); ok {
		return c.Record(ctx, id)
	}

	if searchErr != nil {
		return nil, searchErr
	}

	return nil, domain.UnsupportedRegistryError{DOI: identifier, Registry: RegistryName}
}

// LastModified returns the record's "updated" timestamp. The boolean is false
// when the record has no parsable timestamp.
func (c *Client) LastModified(ctx context.Context, identifier string) (time.Time, bool, error) {
	rec, err := c.FetchMetadata(ctx, identifier)
	if err != nil {
		return time.Time{}, false, err
	}

	t, ok := rec.Updated()
	return t, ok, nil
}

func (c *Client) Record(ctx context.Context, recordID string) (*Record, error) {
	rec := &Record{}

	err := c.get(ctx, fmt.Sprintf("%s/records/%s", c.apiURL, url.PathEscape(recordID)), rec)
	if err != nil {
		return nil, err
	}

	if rec.ID() == "" {
		rec.IDRaw = json.RawMessage(fmt.Sprintf("%q", recordID))
	}

	return rec, nil
}

func (c *Client) search(ctx context.Context, identifier string) (string, error) {
	params := url.Values{}
	params.Add("q", fmt.Sprintf("doi:%q", identifier))
	params.Add("size", "1")

	result := searchResponse{}

	err := c.get(ctx, fmt.Sprintf("%s/records?%s", c.apiURL, params.Encode()), &result)
	if err != nil {
		return "", err
	}

	return result.FirstID()
}

func (c *Client) get(ctx context.Context, targetURL string, result any) error {
	log := logging.GetFromContext(ctx)

	fetchErr := func(statusCode int, err error) error {
		return domain.FetchError{Registry: RegistryName, URL: targetURL, StatusCode: statusCode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return fetchErr(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fetchErr(0, fmt.Errorf("request timed out: %w", err))
		}
		return fetchErr(0, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetchErr(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return fetchErr(resp.StatusCode, fmt.Errorf("request failed"))
	}

	if err = json.Unmarshal(body, result); err != nil {
		return fetchErr(resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return nil
}
