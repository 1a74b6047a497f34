// Package client sends built request specs to the Hevy API and classifies
// the responses. Execution is single-attempt: transport failures and
// server errors surface immediately, and callers that want retries must
// wrap the client themselves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"hevyctl/internal/request"
	"hevyctl/internal/util"
)

// DefaultBaseURL is the production Hevy API endpoint.
const DefaultBaseURL = "https://api.hevyapp.com"

// DefaultTimeout bounds a single request round trip.
const DefaultTimeout = 30 * time.Second

var (
	// ErrTransport marks a network-level failure (connection refused,
	// timeout, DNS). The request may or may not have reached the server.
	ErrTransport = errors.New("transport error")

	// ErrMalformedResponse marks a 2xx response whose body is not JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx response. Status and detail come from the server
// and are passed through without reinterpretation.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the Hevy API. It holds the resolved credential for the
// lifetime of the invocation and attaches it to every request.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New creates a Client. An empty baseURL selects the production endpoint;
// a nil httpc selects the default transport configuration.
func New(baseURL, apiKey string, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		httpc = newHTTPClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   httpc,
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Do sends a single request and returns the raw JSON body of a successful
// response. Non-2xx statuses come back as *APIError; network failures as
// ErrTransport; a non-JSON success body as ErrMalformedResponse.
func (c *Client) Do(ctx context.Context, spec *request.Spec) ([]byte, error) {
	u := c.baseURL + spec.Path
	if len(spec.Query) > 0 {
		u += "?" + spec.Query.Encode()
	}

	var bodyReader io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		log.Debugf("request body: %s", util.Snippet(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("sending %s %s", req.Method, req.URL)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrTransport, err)
	}
	log.Debugf("response: status %d, body %s", resp.StatusCode, util.Snippet(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	if len(body) > 0 && !json.Valid(body) {
		return nil, fmt.Errorf("%w: expected JSON, got: %s", ErrMalformedResponse, util.Snippet(body))
	}
	return body, nil
}

// errorDetail pulls the server's error message out of a failure body,
// falling back to the raw body text.
func errorDetail(body []byte) string {
	if d := gjson.GetBytes(body, "error"); d.Exists() {
		return d.String()
	}
	if d := gjson.GetBytes(body, "message"); d.Exists() {
		return d.String()
	}
	return strings.TrimSpace(string(body))
}
