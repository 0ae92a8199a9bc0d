package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/config"
	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey = errors.New("news api key is not configured")
	ErrUpstream      = errors.New("news provider request failed")
)

// Article is one education news story from the Guardian content API
type Article struct {
	ID       string `json:"id"`
	Section  string `json:"sectionName"`
	Date     string `json:"webPublicationDate"`
	Title    string `json:"webTitle"`
	URL      string `json:"webUrl"`
	Fields   Fields `json:"fields"`
	PillarID string `json:"pillarName,omitempty"`
}

// Fields carries the optional enriched article fields
type Fields struct {
	Headline  string `json:"headline,omitempty"`
	TrailText string `json:"trailText,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type searchResponse struct {
	Response struct {
		Status  string    `json:"status"`
		Results []Article `json:"results"`
	} `json:"response"`
}

// Client proxies education news searches so the API key never reaches
// the browser.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func NewClient(cfg config.NewsConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// Search returns education-section articles matching the query, newest
// first, with headline, trail text and thumbnail fields populated.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("section", "education")
	params.Set("order-by", "newest")
	params.Set("show-fields", "headline,trailText,thumbnail")
	params.Set("page-size", "12")
	params.Set("api-key", c.apiKey)

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling news provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("News provider returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding news response: %w", err)
	}
	if body.Response.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", ErrUpstream, body.Response.Status)
	}

	return body.Response.Results, nil
}
