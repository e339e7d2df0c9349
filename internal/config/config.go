// Package config centralizes the engine's runtime configuration. Every value
// can be overridden via UTXO_-prefixed environment variables and falls back
// to a sane default.
package config

import (
	"fmt"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
	"github.com/pocketbtc/utxo-engine/pkg/explorer/blockchain"
)

const (
	// ExplorerEndpointKey is the base URL of the blockchain indexer REST API
	ExplorerEndpointKey = "EXPLORER_ENDPOINT"
	// ExplorerRequestTimeoutKey are the milliseconds to wait for HTTP responses before timeouts
	ExplorerRequestTimeoutKey = "EXPLORER_REQUEST_TIMEOUT"
	// ChainKey is the chain to operate on. Either "bitcoin" or "bitcoincash"
	ChainKey = "CHAIN"
	// CacheExpiryKey is the lifetime in seconds of cached remote lookups
	CacheExpiryKey = "CACHE_EXPIRY"
	// FeePerByteKey is the default fee rate in satoshis per byte used when the caller passes none
	FeePerByteKey = "FEE_PER_BYTE"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("UTXO")
	vip.AutomaticEnv()

	vip.SetDefault(ExplorerEndpointKey, "https://blockchain.info")
	vip.SetDefault(ExplorerRequestTimeoutKey, 15000)
	vip.SetDefault(ChainKey, domain.Bitcoin.Name)
	vip.SetDefault(CacheExpiryKey, 60)
	vip.SetDefault(FeePerByteKey, 10)
	vip.SetDefault(LogLevelKey, 4)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetUint ...
func GetUint(key string) uint64 {
	return vip.GetUint64(key)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

//GetChain ...
func GetChain() domain.Chain {
	chain, _ := domain.ChainFromName(GetString(ChainKey))
	return chain
}

// GetCacheExpiry returns the lifetime of cached remote lookups.
func GetCacheExpiry() time.Duration {
	return time.Duration(GetInt(CacheExpiryKey)) * time.Second
}

//GetExplorer ...
func GetExplorer() (explorer.Service, error) {
	endpoint := GetString(ExplorerEndpointKey)
	reqTimeout := time.Duration(GetInt(ExplorerRequestTimeoutKey)) * time.Millisecond
	return blockchain.NewService(endpoint, reqTimeout)
}

func validate() error {
	endpoint := GetString(ExplorerEndpointKey)
	if _, err := url.Parse(endpoint); err != nil {
		return fmt.Errorf("explorer endpoint is not a valid url: %s", err)
	}

	if _, err := domain.ChainFromName(GetString(ChainKey)); err != nil {
		return err
	}

	if GetInt(CacheExpiryKey) <= 0 {
		return fmt.Errorf("cache expiry must be a positive number of seconds")
	}
	if GetInt(FeePerByteKey) <= 0 {
		return fmt.Errorf("fee per byte must be a positive number of satoshis")
	}
	return nil
}
