package quoting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/fees"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/slippage"
)

func newTestService(t *testing.T, upstreamURL string) *Service {
	t.Helper()

	upstream := &config.UpstreamConfig{
		EVMQuoteEndpoints: map[domain.Chain]string{
			domain.ChainEthereum: upstreamURL,
			domain.ChainBSC:      upstreamURL,
			domain.ChainPolygon:  upstreamURL,
		},
		SolanaQuoteURL: upstreamURL,
		SearchBaseURL:  upstreamURL,
		RequestTimeout: 5 * time.Second,
		QuoteCacheTTL:  time.Minute,
	}

	feesConf := &config.FeesConfig{}
	require.NoError(t, feesConf.Load())
	riskConf := &config.RiskConfig{}
	require.NoError(t, riskConf.Load())

	svc := &Service{
		upstream: upstream,
		evm:      NewZeroXClient(upstream),
		solana:   NewJupiterClient(upstream),
		feeCalc:  fees.NewCalculator(feesConf),
		tiered:   feesConf.TieredEnabled,
		slippage: slippage.NewEngine(slippage.NewClassifier(riskConf)),
		cache:    NewCache(upstream.QuoteCacheTTL),
	}
	svc.logger = common.NewServiceLogger(svc)
	return svc
}

func TestGetQuote_EVMHappyPath(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"buyAmount":"42000","estimatedPriceImpact":"0.4","sources":[{"name":"Uniswap_V3","proportion":"1"}]}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	req := domain.QuoteRequest{
		Chain:         domain.ChainEthereum,
		SellToken:     "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:      "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount:    "1000000000",
		SellAmountUSD: 450,
	}

	q, err := svc.GetQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "42000", q.BuyAmount)
	assert.Contains(t, gotQuery, "sellAmount=1000000000")

	// 450 USD lands in the sub-1k bracket at 0.35%.
	assert.Equal(t, "T1_0_1k", q.Fee.FeeTier)
	assert.Equal(t, 0.35, q.Fee.FeePercent)
	require.NotNil(t, q.Fee.FeeUSD)
	assert.InDelta(t, 1.575, *q.Fee.FeeUSD, 1e-9)
	// 42000 base units at 0.35%, rounded down.
	assert.Equal(t, "147", q.Fee.FeeAmount)

	// Impact under 1% gets the quiet default slippage.
	assert.Equal(t, domain.SlippageAuto, q.Slippage.Mode)
	assert.Equal(t, 0.5, q.Slippage.Value)
	assert.Empty(t, q.Slippage.Warning)
}

func TestGetQuote_SolanaHappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "inputMint=So11111111111111111111111111111111111111112")
		w.Write([]byte(`{"outAmount":"158000000","priceImpactPct":"0.002"}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	req := domain.QuoteRequest{
		Chain:      domain.ChainSolana,
		SellToken:  "So11111111111111111111111111111111111111112",
		BuyToken:   "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		SellAmount: "1000000000",
	}

	q, err := svc.GetQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "158000000", q.BuyAmount)
	// No USD notional means flat fallback fee.
	assert.Equal(t, 0.30, q.Fee.FeePercent)
	assert.Nil(t, q.Fee.FeeUSD)
	assert.Equal(t, fees.QuoteVersionFallback, q.Fee.QuoteVersion)
}

func TestGetQuote_SameTokenRejected(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")
	req := domain.QuoteRequest{
		Chain:      domain.ChainEthereum,
		SellToken:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:   "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		SellAmount: "1000",
	}

	_, err := svc.GetQuote(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestGetQuote_NonPositiveAmountRejected(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")
	base := domain.QuoteRequest{
		Chain:     domain.ChainEthereum,
		SellToken: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
	}

	for _, amount := range []string{"0", "-5", "1.5", "abc", ""} {
		req := base
		req.SellAmount = amount
		_, err := svc.GetQuote(context.Background(), req)
		require.Error(t, err, "amount %q", amount)
		assert.True(t, errors.Is(err, common.ErrValidation), "amount %q", amount)
	}
}

func TestGetQuote_CustomSlippageOutOfRangeRejected(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	bad := 75.0
	req := domain.QuoteRequest{
		Chain:          domain.ChainEthereum,
		SellToken:      "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:       "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount:     "1000",
		CustomSlippage: &bad,
	}

	_, err := svc.GetQuote(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.False(t, called, "invalid slippage must not reach the upstream")
}

func TestGetQuote_CustomSlippageUsedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"buyAmount":"1","estimatedPriceImpact":"9.9"}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	custom := 1.25
	req := domain.QuoteRequest{
		Chain:          domain.ChainEthereum,
		SellToken:      "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:       "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount:     "1000",
		CustomSlippage: &custom,
	}

	q, err := svc.GetQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.SlippageCustom, q.Slippage.Mode)
	assert.Equal(t, 1.25, q.Slippage.Value)
	assert.Empty(t, q.Slippage.Warning)
}

func TestGetQuote_Upstream4xxIsQuoteUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"reason":"INSUFFICIENT_ASSET_LIQUIDITY"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	req := domain.QuoteRequest{
		Chain:      domain.ChainEthereum,
		SellToken:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:   "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount: "1000",
	}

	_, err := svc.GetQuote(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
}

func TestGetQuote_Upstream5xxIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	req := domain.QuoteRequest{
		Chain:      domain.ChainEthereum,
		SellToken:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:   "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount: "1000",
	}

	_, err := svc.GetQuote(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNetwork))
}

func TestGetQuote_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"buyAmount":"42000"}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	req := domain.QuoteRequest{
		Chain:      domain.ChainEthereum,
		SellToken:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:   "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount: "1000",
	}

	_, err := svc.GetQuote(context.Background(), req)
	require.NoError(t, err)

	// Same pair and amount with different address casing hits the cache.
	req.SellToken = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	q, err := svc.GetQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "42000", q.BuyAmount)
	assert.Equal(t, 1, calls)
}
