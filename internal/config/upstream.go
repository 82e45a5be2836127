package config

import (
	"errors"
	"time"

	"github.com/andrew-solarstorm/go-packages/common"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

// UpstreamConfig describes the external routing and search services the
// engine aggregates. Endpoints are overridable per environment so tests can
// point them at local fakes.
type UpstreamConfig struct {
	// EVMQuoteEndpoints maps an EVM chain to its 0x-style quote API base URL.
	EVMQuoteEndpoints map[domain.Chain]string
	EVMAPIKey         string

	// SolanaQuoteURL is the Jupiter-style quote endpoint base URL.
	SolanaQuoteURL string

	// SearchBaseURL is the dexscreener-style token/pair resolution base URL.
	SearchBaseURL string

	// FeeRecipient receives the platform fee on EVM swaps; relayed to the
	// upstream as query parameters, never handled locally.
	FeeRecipient       string
	BuyTokenFeePercent string

	RequestTimeout time.Duration
	QuoteCacheTTL  time.Duration

	// Debounce delays for the embeddable query sessions.
	TokenSearchDebounce time.Duration
	PairSearchDebounce  time.Duration
	QuoteDebounce       time.Duration
}

func (c *UpstreamConfig) Key() string {
	return UPSTREAM_CONFIG_KEY
}

func (c *UpstreamConfig) Load() error {
	c.EVMQuoteEndpoints = map[domain.Chain]string{
		domain.ChainEthereum: common.GetEnvOrDefault("ZEROX_URL_ETHEREUM", "https://api.0x.org"),
		domain.ChainBSC:      common.GetEnvOrDefault("ZEROX_URL_BSC", "https://bsc.api.0x.org"),
		domain.ChainPolygon:  common.GetEnvOrDefault("ZEROX_URL_POLYGON", "https://polygon.api.0x.org"),
	}
	c.EVMAPIKey = common.GetEnvOrDefault("ZEROX_API_KEY", "")
	c.SolanaQuoteURL = common.GetEnvOrDefault("SOLANA_QUOTE_URL", "https://quote-api.jup.ag/v6")
	c.SearchBaseURL = common.GetEnvOrDefault("SEARCH_BASE_URL", "https://api.dexscreener.com")
	c.FeeRecipient = common.GetEnvOrDefault("FEE_RECIPIENT", "0x0000000000000000000000000000000000000000")
	c.BuyTokenFeePercent = common.GetEnvOrDefault("BUY_TOKEN_FEE_PERCENT", "0.2")

	c.RequestTimeout = time.Duration(common.GetEnvOrDefaultInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second
	c.QuoteCacheTTL = time.Duration(common.GetEnvOrDefaultInt("QUOTE_CACHE_TTL_SECONDS", 10)) * time.Second

	c.TokenSearchDebounce = time.Duration(common.GetEnvOrDefaultInt("TOKEN_SEARCH_DEBOUNCE_MS", 250)) * time.Millisecond
	c.PairSearchDebounce = time.Duration(common.GetEnvOrDefaultInt("PAIR_SEARCH_DEBOUNCE_MS", 500)) * time.Millisecond
	c.QuoteDebounce = time.Duration(common.GetEnvOrDefaultInt("QUOTE_DEBOUNCE_MS", 800)) * time.Millisecond

	return c.Validate()
}

func (c *UpstreamConfig) Validate() error {
	if c.SolanaQuoteURL == "" || c.SearchBaseURL == "" {
		return errors.New("invalid upstream config")
	}
	for chain, url := range c.EVMQuoteEndpoints {
		if url == "" {
			return errors.New("missing quote endpoint for chain " + chain.String())
		}
	}
	if c.RequestTimeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}
	return nil
}
