// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client; outbound calls to the ledger node go
// through it.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption tunes the underlying resty client.
type HTTPClientOption func(*resty.Client)

// WithTimeout bounds every request made by the client. Non-positive values
// leave the client without a timeout.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// WithTransportRetries retries requests that got no response, timeouts
// included, so the request may already have been processed. Use it only for
// idempotent calls. HTTP error statuses are returned to the caller as is.
func WithTransportRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if count <= 0 {
			return
		}
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(4 * wait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil
			})
	}
}

// NewHTTPClient returns an independent client with opts applied.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
