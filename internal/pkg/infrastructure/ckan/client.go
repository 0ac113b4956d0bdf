package ckan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/httpclient"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/ckan")

// Client talks to the CKAN action API at {baseURL}/api/3/action/{action}.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpclient.New(timeout),
	}
}

// WithToken returns a copy of the client that authenticates with another token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type actionResponse struct {
	Success bool                       `json:"success"`
	Result  json.RawMessage            `json:"result"`
	Error   map[string]json.RawMessage `json:"error"`
}

func (c *Client) call(ctx context.Context, action string, payload any, result any) (err error) {
	ctx, span := tracer.Start(ctx, action)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", action, err)
	}

	actionURL := fmt.Sprintf("%s/api/3/action/%s", c.baseURL, action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, actionURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	if c.token != "" {
		req.Header.Add("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response body: %w", action, err)
	}

	ar := actionResponse{}
	jsonErr := json.Unmarshal(respBody, &ar)

	if resp.StatusCode >= http.StatusBadRequest || (jsonErr == nil && !ar.Success) {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)
		log.Debug().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("action failed")

		err = toError(action, payload, resp.StatusCode, ar.Error, respBody)
		return err
	}

	if jsonErr != nil {
		err = fmt.Errorf("failed to unmarshal %s response: %w", action, jsonErr)
		return err
	}

	if result != nil {
		if err = json.Unmarshal(ar.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal %s result: %w", action, err)
		}
	}

	return nil
}

func toError(action string, payload any, statusCode int, details map[string]json.RawMessage, body []byte) error {
	errorType := rawString(details["__type"])
	message := rawString(details["message"])

	switch {
	case errorType == "Validation Error" || statusCode == http.StatusConflict:
		fields := map[string][]string{}
		for k, v := range details {
			if k == "__type" || k == "message" {
				continue
			}
			fields[k] = rawMessages(v)
		}
		if message == "" {
			message = "validation error"
		}
		return domain.ValidationFailure{Message: message, Fields: fields}
	case errorType == "Authorization Error" || statusCode == http.StatusForbidden || statusCode == http.StatusUnauthorized:
		return domain.NotAuthorizedError{Action: action, Message: message}
	case errorType == "Not Found Error" || statusCode == http.StatusNotFound:
		return domain.NotFoundError{Action: action, ID: payloadID(payload)}
	}

	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	return fmt.Errorf("%s failed with status code %d: %s", action, statusCode, message)
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func rawMessages(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []string{s}
	}

	return []string{string(raw)}
}

func payloadID(payload any) string {
	if m, ok := payload.(map[string]any); ok {
		if id, ok := m["id"].(string); ok {
			return id
		}
	}
	return ""
}
