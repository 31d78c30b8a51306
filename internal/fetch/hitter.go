// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/hashicorp/go-cleanhttp"
)

// UserAgent is sent with every request. The API rejects some default client
// identifiers.
const UserAgent = "Mozilla"

// Getter retrieves the body at a URL.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// HTTPGetter is a Getter doing a plain GET.
type HTTPGetter struct {
	Client *http.Client
}

// NewHTTPGetter returns a getter using a non-shared client with the default
// transport settings.
func NewHTTPGetter() *HTTPGetter {
	return &HTTPGetter{Client: cleanhttp.DefaultClient()}
}

// Get returns the full response body. Nothing is returned unless the status
// is 2xx and the body was read completely.
func (h *HTTPGetter) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	log.Debugf("GET %s", url)
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return doc.Bytes(), nil
}
