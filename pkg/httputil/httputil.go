// Package httputil holds the shared HTTP plumbing used by the remote indexer
// clients.
package httputil

import (
	"context"
	"io"
	"net/http"
)

// Get issues a context-aware GET request and returns the response status and
// body. Cancelling the context aborts the request, timeouts belong to the
// provided client.
func Get(
	ctx context.Context, client *http.Client, url string, header map[string]string,
) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}

	for key, value := range header {
		req.Header.Set(key, value)
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}

	return res.StatusCode, body, nil
}
