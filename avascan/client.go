package avascan

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/stakestar/avaxtracker/logger"
)

const maxErrorBody = 512

type Config struct {
	BaseURL        string `yaml:"baseUrl" json:"baseUrl" env:"AVASCAN_BASE_URL" env-description:"Validator status API base URL" env-default:"https://api.avascan.info/v2"`
	Network        string `yaml:"network" json:"network" env:"AVASCAN_NETWORK" env-description:"Network name used in the API path" env-default:"mainnet"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" json:"timeoutSeconds" env:"AVASCAN_TIMEOUT_SECONDS" env-description:"Timeout of a single validations request" env-default:"10"`
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Client talks to the avascan staking API.
type Client struct {
	BaseURL    string
	Network    string
	HTTPClient *http.Client

	logger *zap.Logger
}

func NewClient(cfg *Config, log *zap.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		Network: cfg.Network,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger.Named(log, "AvascanClient"),
	}
}

// ValidationsURL builds the listing URL for the given node IDs. The IDs are
// sent comma-joined in a single nodeIds parameter.
func (c *Client) ValidationsURL(nodeIDs []string) string {
	q := url.Values{}
	q.Set("nodeIds", strings.Join(nodeIDs, ","))
	q.Set("status", "active")
	return c.BaseURL + "/network/" + url.PathEscape(c.Network) + "/staking/validations?" + q.Encode()
}

// GetValidations fetches the active validations of the given nodes in one call.
func (c *Client) GetValidations(ctx context.Context, nodeIDs []string) ([]Validation, error) {
	fullURL := c.ValidationsURL(nodeIDs)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build validations request")
	}
	req.Header.Set("accept", "application/json")

	c.logger.Debug("fetching validations", zap.String("url", fullURL))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("unexpected validations response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, &RequestError{URL: fullURL, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	var result validationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if ctx.Err() != nil {
			return nil, &RequestError{URL: fullURL, Err: err}
		}
		return nil, &DecodeError{Err: err}
	}
	c.logger.Debug("fetched validations", zap.Int("items", len(result.Items)))
	return result.Items, nil
}
