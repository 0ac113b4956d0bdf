package obis

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
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/lenient"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/httpclient"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/registries/obis")

const (
	RegistryName string = "OBIS"
	// InstitutePageSize is large enough to fetch every institute in one request.
	InstitutePageSize int = 10000
)

type Node struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	URLRaw      json.RawMessage `json:"url"`
	LonRaw      json.RawMessage `json:"lon"`
	LatRaw      json.RawMessage `json:"lat"`
	Theme       string          `json:"theme"`
	Contacts    json.RawMessage `json:"contacts"`
	Feeds       json.RawMessage `json:"feeds"`
}

// URL returns the first of the node's urls.
func (n Node) URL() string {
	urls := lenient.Strings(n.URLRaw)
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

func (n Node) Longitude() string {
	return lenient.String(n.LonRaw)
}

func (n Node) Latitude() string {
	return lenient.String(n.LatRaw)
}

type Institute struct {
	IDRaw       json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	EDMOCodeRaw json.RawMessage `json:"edmo_code"`
	Country     string          `json:"country"`
}

// OceanExpertID is the institute id, which OBIS shares with Ocean Expert.
// Institutes unknown to Ocean Expert have no id.
func (i Institute) OceanExpertID() string {
	return lenient.String(i.IDRaw)
}

func (i Institute) EDMOCode() string {
	return lenient.String(i.EDMOCodeRaw)
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

func (c *Client) Nodes(ctx context.Context) (nodes []Node, err error) {
	ctx, span := tracer.Start(ctx, "get-nodes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	response := struct {
		Total   int    `json:"total"`
		Results []Node `json:"results"`
	}{}

	if err = c.get(ctx, c.apiURL+"/node", &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

// InstitutesWithOceanExpertID returns the institutes that carry an Ocean
// Expert id, together with the number of institutes the registry returned.
func (c *Client) InstitutesWithOceanExpertID(ctx context.Context) (institutes []Institute, fetched int, err error) {
	ctx, span := tracer.Start(ctx, "get-institutes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	response := struct {
		Total   int         `json:"total"`
		Results []Institute `json:"results"`
	}{}

	targetURL := fmt.Sprintf("%s/institute?size=%d", c.apiURL, InstitutePageSize)
	if err = c.get(ctx, targetURL, &response); err != nil {
		return nil, 0, err
	}

	institutes = make([]Institute, 0, len(response.Results))
	for _, inst := range response.Results {
		if inst.OceanExpertID() != "" {
			institutes = append(institutes, inst)
		}
	}

	return institutes, len(response.Results), nil
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
		return fetchErr(0, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")
		return fetchErr(resp.StatusCode, fmt.Errorf("request failed"))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetchErr(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if err = json.Unmarshal(body, result); err != nil {
		return fetchErr(resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return nil
}
