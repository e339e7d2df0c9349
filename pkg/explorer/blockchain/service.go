// Package blockchain implements the explorer.Service interface on top of the
// indexer REST API used by the wallet backends (balance, unspent and
// multiaddr endpoints keyed by address or xpub).
package blockchain

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/pocketbtc/utxo-engine/pkg/circuitbreaker"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
	"github.com/pocketbtc/utxo-engine/pkg/httputil"
)

const (
	defaultRequestTimeout = 15 * time.Second

	// maxKeysPerRequest caps the number of keys joined into a single call,
	// larger sets are split into chunks fetched concurrently.
	maxKeysPerRequest = 50

	// requestsPerSecond paces outgoing calls so that chunked fetches do not
	// hammer the indexer.
	requestsPerSecond = 10
)

type service struct {
	apiURL  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewService returns an explorer.Service talking to the indexer at apiURL.
// A non-positive requestTimeout falls back to 15 seconds.
func NewService(apiURL string, requestTimeout time.Duration) (explorer.Service, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("missing explorer endpoint")
	}
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &service{
		apiURL:  strings.TrimSuffix(apiURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		breaker: circuitbreaker.NewCircuitBreaker("explorer"),
		limiter: ratelimit.New(requestsPerSecond),
	}, nil
}

func (s *service) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	s.limiter.Take()

	endpoint := fmt.Sprintf("%s%s?%s", s.apiURL, path, query.Encode())
	res, err := s.breaker.Execute(func() (interface{}, error) {
		status, body, err := httputil.Get(ctx, s.client, endpoint, nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("explorer responded with status %d: %s", status, body)
		}
		return body, nil
	})
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("explorer request failed")
		return nil, err
	}

	return res.([]byte), nil
}

func activeParam(keys []string) url.Values {
	return url.Values{"active": []string{strings.Join(keys, "|")}}
}

func chunkKeys(keys []string, size int) [][]string {
	var chunks [][]string
	for len(keys) > size {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}
	if len(keys) > 0 {
		chunks = append(chunks, keys)
	}
	return chunks
}
