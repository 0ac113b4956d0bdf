// Package oceanexpert reads institute records from the Ocean Expert directory.
package oceanexpert

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
	"github.com/obis/doi-harvester/internal/pkg/application/registries/lenient"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/httpclient"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/registries/oceanexpert")

const RegistryName string = "Ocean Expert"

// Institute holds the fields of an Ocean Expert institute, keyed by their
// Ocean Expert names (instName, instUrl, countryCode, ...).
type Institute map[string]json.RawMessage

// Get returns the trimmed value of key, or an empty string.
func (i Institute) Get(key string) string {
	return strings.TrimSpace(lenient.String(i[key]))
}

type Record struct {
	InstituteRaw json.RawMessage `json:"institute"`
	MembersRaw   json.RawMessage `json:"members"`
}

// Institute returns nil when the record has no institute object.
func (r Record) Institute() Institute {
	obj := lenient.Object(r.InstituteRaw)
	if len(obj) == 0 {
		return nil
	}
	return Institute(obj)
}

func (r Record) MemberCount() int64 {
	count, _ := lenient.Int(lenient.Object(r.MembersRaw)["count"])
	return count
}

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

func (c *Client) Institute(ctx context.Context, id string) (rec *Record, err error) {
	ctx, span := tracer.Start(ctx, "get-institute")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	targetURL := fmt.Sprintf("%s/institute/%s.json", c.apiURL, id)

	fetchErr := func(statusCode int, err error) error {
		return domain.FetchError{Registry: RegistryName, URL: targetURL, StatusCode: statusCode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fetchErr(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr(0, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log.Debug().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("request failed"))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if !lenient.IsObject(body) {
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("expected a JSON object"))
	}

	rec = &Record{}
	if err = json.Unmarshal(body, rec); err != nil {
		return nil, fetchErr(resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return rec, nil
}
