// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failing node response ends up in the
// error. Load balancers in front of full nodes tend to answer with HTML.
const maxErrorBody = 256

// mapHTTPError turns a non-2xx node response into one of the adapter's
// sentinel errors. 2xx responses map to nil; JSON-RPC level errors are
// handled by the caller.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp.Body())
	if body == "" {
		body = http.StatusText(code)
	}

	var sentinel error
	switch code {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusRequestTimeout, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		sentinel = ErrUnavailable
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}

func errorBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= maxErrorBody {
		return s
	}
	s = s[:maxErrorBody]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
