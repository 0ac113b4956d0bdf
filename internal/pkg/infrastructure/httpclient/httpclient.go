package httpclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StalkR/hsts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout time.Duration = 30 * time.Second

type DowngradedRedirectError struct {
	Endpoint string
}

func (e DowngradedRedirectError) Error() string {
	return fmt.Sprintf("redirect from https to http refused: %s", e.Endpoint)
}

// New returns a traced http client with HSTS enabled that refuses to follow
// redirects that downgrade https to http.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > 0 && via[0].URL.Scheme == "https" && req.URL.Scheme == "http" {
				return DowngradedRedirectError{
					Endpoint: fmt.Sprintf("%s%s", req.URL.Host, req.URL.Path),
				}
			}
			if len(via) >= 10 {
				return fmt.Errorf("stopped after %d redirects", len(via))
			}
			return nil
		},
		Transport: hsts.New(otelhttp.NewTransport(http.DefaultTransport)),
	}
}
