// Package zenquotes fetches a random quote used as the daily writing prompt.
package zenquotes

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const DefaultURL = "https://zenquotes.io/api/random"

// Observer receives status code and duration of every finished call.
type Observer func(status int, elapsed time.Duration)

type Client struct {
	http     *resty.Client
	url      string
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

type quote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

func New(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		http: resty.New().
			SetTimeout(5*time.Second).
			SetHeader("Cache-Control", "no-store").
			SetJSONUnmarshaler(sonic.Unmarshal),
		url: url,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) RandomQuote(ctx context.Context) (string, string, error) {
	var result []quote
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(c.url)
	if resp != nil && c.observer != nil {
		c.observer(resp.StatusCode(), resp.Time())
	}
	if err != nil {
		return "", "", errors.New("zenquotes request error: " + err.Error())
	}
	if resp.IsError() {
		return "", "", errors.New("zenquotes responded with status " + strconv.Itoa(resp.StatusCode()))
	}
	if len(result) == 0 {
		return "", "", errors.New("zenquotes returned no quotes")
	}
	return result[0].Q, result[0].A, nil
}
