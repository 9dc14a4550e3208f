package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production FRED endpoint.
const DefaultBaseURL = "https://api.stlouisfed.org"

// Parameters injected into every request.
const (
	ParamFileType = "file_type"
	ParamAPIKey   = "api_key"
)

const maxRedirects = 10

// Client dispatches FRED API requests.
//
// The base URL and API key may be changed at any time, but the setters are
// not synchronized: each call reads both once when it starts, and a call
// racing a setter may observe either value.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new FRED client. Without WithAPIKey the key is empty and
// the service is expected to reject requests.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// Work on a copy so a caller-supplied client is left untouched.
	hc := *c.httpClient
	if hc.CheckRedirect == nil {
		hc.CheckRedirect = followWithoutReferer
	}
	c.httpClient = &hc

	return c
}

// SetAPIKey replaces the credential used by subsequent calls.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SetBaseURL replaces the endpoint used by subsequent calls.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// APIKey returns the current credential.
func (c *Client) APIKey() string { return c.apiKey }

// BaseURL returns the current endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// Execute performs a GET against path with the given parameters.
//
// On a completed exchange the Result is a *Success, *ServiceError or
// *TransportFailure and the error is nil. A non-nil error means the request
// could not be built (nothing was sent) or a FormatObject body was not valid
// JSON (*DecodeError).
func (c *Client) Execute(ctx context.Context, path string, params *Params, format ResponseFormat) (Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: response format %d", ErrInvalidParameter, int(format))
	}

	baseURL, apiKey := c.baseURL, c.apiKey

	query := params.Clone()
	query.Set(ParamFileType, format.FileType())
	query.Set(ParamAPIKey, apiKey)

	requestURL, err := buildURL(baseURL, path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("path", path).
		Logger()
	log.Debug().
		Str("format", format.String()).
		Strs("params", params.Keys()).
		Msg("Making FRED API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = RedactURLError(err)
		log.Debug().Err(err).Msg("FRED request failed before a response")
		return &TransportFailure{Cause: err}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode).Msg("Failed to read FRED response body")
		return &TransportFailure{Cause: fmt.Errorf("failed to read response body: %w", err)}, nil
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("FRED API request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &ServiceError{Status: resp.StatusCode, Body: body}, nil
	}

	success := &Success{Status: resp.StatusCode, Format: format, Body: body}
	if format == FormatObject {
		if err := json.Unmarshal(body, &success.Object); err != nil {
			return nil, &DecodeError{StatusCode: resp.StatusCode, Body: body, Err: err}
		}
	}
	return success, nil
}

// buildURL joins baseURL and path as path segments and attaches the query.
func buildURL(baseURL, path string, query *Params) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q has no scheme or host", ErrInvalidBaseURL, baseURL)
	}

	u = u.JoinPath(path)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// followWithoutReferer keeps net/http's redirect limit and drops the Referer
// header it would otherwise add.
func followWithoutReferer(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	req.Header.Del("Referer")
	return nil
}

// RedactURLError strips the query string, which carries the API key, from
// every *url.Error in the chain. Wrapping transports nest them.
func RedactURLError(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		urlErr, ok := e.(*url.Error)
		if !ok {
			continue
		}
		if u, perr := url.Parse(urlErr.URL); perr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}
	return err
}
