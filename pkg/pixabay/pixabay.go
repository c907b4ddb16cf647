// Package pixabay looks up mood illustrations.
package pixabay

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const DefaultURL = "https://pixabay.com/api/"

// Observer receives status code and duration of every finished call.
type Observer func(status int, elapsed time.Duration)

type Client struct {
	http     *resty.Client
	url      string
	apiKey   string
	observer Observer
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

type searchResponse struct {
	Total int `json:"total"`
	Hits  []struct {
		LargeImageURL string `json:"largeImageURL"`
	} `json:"hits"`
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		http: resty.New().
			SetTimeout(5 * time.Second).
			SetJSONUnmarshaler(sonic.Unmarshal),
		url:    baseURL,
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchImage returns URL of the first large illustration for query.
// Any failure is logged and reported as nil.
func (c *Client) SearchImage(ctx context.Context, query string) *string {
	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":          query,
			"key":        c.apiKey,
			"min_width":  "1280",
			"min_height": "720",
			"image_type": "illustration",
			"category":   "feelings",
		}).
		SetResult(&result).
		Get(c.url)
	if resp != nil && c.observer != nil {
		c.observer(resp.StatusCode(), resp.Time())
	}
	if err != nil {
		slog.Warn("pixabay request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil
	}
	if resp.IsError() {
		slog.Warn("pixabay responded with error", slog.String("query", query), slog.String("status", strconv.Itoa(resp.StatusCode())))
		return nil
	}
	if len(result.Hits) == 0 || result.Hits[0].LargeImageURL == "" {
		return nil
	}
	url := result.Hits[0].LargeImageURL
	return &url
}
