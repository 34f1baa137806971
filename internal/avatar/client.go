// Package avatar generates default profile images through the
// ui-avatars HTTP API.
package avatar

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(endpoint),
	}
}

// Generate renders an image for the given display name. Failures are
// returned as-is; the caller decides what signup does with them.
func (c *Client) Generate(ctx context.Context, fullName string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":       fullName,
			"background": "random",
		}).
		Get("/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("avatar service responded with status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
