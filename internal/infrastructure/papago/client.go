package papago

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"papagowf/internal/domain"
	"papagowf/internal/domain/entities"
	"papagowf/internal/ports/output"
)

const (
	// DefaultBaseURL is the Papago open API root.
	DefaultBaseURL = "https://openapi.naver.com/v1/papago/"

	HeaderClientID     = "X-Naver-Client-Id"
	HeaderClientSecret = "X-Naver-Client-Secret"

	formContentType = "application/x-www-form-urlencoded; charset=UTF-8"
)

var _ output.ProviderClient = (*Client)(nil)

// Client posts authenticated form requests to the Papago API. It returns
// whatever status the provider answers with.
type Client struct {
	baseURL     string
	credentials entities.Credentials
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient builds a client for baseURL. A nil httpClient uses a client with
// transport defaults.
func NewClient(baseURL string, creds entities.Credentials, httpClient *http.Client, logger zerolog.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:     baseURL,
		credentials: creds,
		httpClient:  httpClient,
		logger:      logger.With().Str("component", "papago").Logger(),
	}
}

// Execute sends form to endpoint and returns the raw status code and body.
// Only transport failures are errors.
func (c *Client) Execute(ctx context.Context, endpoint string, form url.Values) (int, []byte, error) {
	target, err := url.JoinPath(c.baseURL, endpoint)
	if err != nil {
		return 0, nil, &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("build url: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("build request: %w", err)}
	}
	c.authenticate(req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(started)).
		Msg("provider call")

	return resp.StatusCode, body, nil
}

func (c *Client) authenticate(req *http.Request) {
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set(HeaderClientID, c.credentials.ClientID)
	req.Header.Set(HeaderClientSecret, c.credentials.ClientSecret)
}
