package quoting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

func evmRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		Chain:      domain.ChainEthereum,
		SellToken:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		BuyToken:   "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		SellAmount: "1000000000",
	}
}

func TestNormalizeEVM_BuyAmountTopLevel(t *testing.T) {
	raw := []byte(`{"buyAmount":"42000","estimatedGas":"150000","sources":[{"name":"Uniswap_V3","proportion":"1"},{"name":"Curve","proportion":"0"}]}`)

	q, err := NormalizeEVM(raw, evmRequest())
	require.NoError(t, err)
	assert.Equal(t, "42000", q.BuyAmount)
	assert.Equal(t, "evm-top", q.BuyAmountPath)
	assert.Equal(t, "150000", q.GasEstimate)
	require.Len(t, q.Sources, 1)
	assert.Equal(t, "Uniswap_V3", q.Sources[0].Name)
}

func TestNormalizeEVM_BuyAmountNestedInTransaction(t *testing.T) {
	raw := []byte(`{"transaction":{"to":"0xdef1","data":"0x00","gas":"210000","buyAmount":"987"}}`)

	q, err := NormalizeEVM(raw, evmRequest())
	require.NoError(t, err)
	assert.Equal(t, "987", q.BuyAmount)
	assert.Equal(t, "evm-transaction", q.BuyAmountPath)
	assert.Equal(t, "210000", q.GasEstimate)
	assert.NotEmpty(t, q.TransactionPayload)
}

func TestNormalizeEVM_BuyAmountInIssues(t *testing.T) {
	raw := []byte(`{"issues":{"allowance":null,"buyAmount":"555"}}`)

	q, err := NormalizeEVM(raw, evmRequest())
	require.NoError(t, err)
	assert.Equal(t, "555", q.BuyAmount)
	assert.Equal(t, "evm-issues", q.BuyAmountPath)
}

func TestNormalizeEVM_PriorityOrder(t *testing.T) {
	// All three locations present: top level wins.
	raw := []byte(`{"buyAmount":"1","transaction":{"buyAmount":"2"},"issues":{"buyAmount":"3"}}`)

	q, err := NormalizeEVM(raw, evmRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", q.BuyAmount)
	assert.Equal(t, "evm-top", q.BuyAmountPath)
}

func TestNormalizeEVM_NoBuyAmountAnywhere(t *testing.T) {
	raw := []byte(`{"sellAmount":"1000","price":"3100.5"}`)

	_, err := NormalizeEVM(raw, evmRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
}

func TestNormalizeEVM_MalformedJSON(t *testing.T) {
	_, err := NormalizeEVM([]byte(`{"buyAmount":`), evmRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
}

func TestNormalizeEVM_PriceImpactFromUpstream(t *testing.T) {
	raw := []byte(`{"buyAmount":"1","estimatedPriceImpact":"2.35"}`)

	q, err := NormalizeEVM(raw, evmRequest())
	require.NoError(t, err)
	assert.InDelta(t, 2.35, q.PriceImpactPercent, 1e-9)
}

func TestNormalizeEVM_PriceImpactDerivedFromUSD(t *testing.T) {
	req := evmRequest()
	req.SellAmountUSD = 1000
	raw := []byte(`{"buyAmount":"1","buyAmountUsd":970}`)

	q, err := NormalizeEVM(raw, req)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, q.PriceImpactPercent, 1e-9)
}

func TestNormalizeEVM_PriceImpactPlaceholder(t *testing.T) {
	q, err := NormalizeEVM([]byte(`{"buyAmount":"1"}`), evmRequest())
	require.NoError(t, err)
	assert.InDelta(t, defaultPriceImpact, q.PriceImpactPercent, 1e-9)
}

func solanaRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		Chain:      domain.ChainSolana,
		SellToken:  "So11111111111111111111111111111111111111112",
		BuyToken:   "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		SellAmount: "1000000000",
	}
}

func TestNormalizeSolana_FlatSchema(t *testing.T) {
	raw := []byte(`{
		"outAmount":"158000000",
		"priceImpactPct":"0.013",
		"routePlan":[
			{"swapInfo":{"label":"Raydium"},"percent":60},
			{"swapInfo":{"label":"Orca"},"percent":40}
		],
		"swapTransaction":"AQAB"
	}`)

	q, err := NormalizeSolana(raw, solanaRequest())
	require.NoError(t, err)
	assert.Equal(t, "158000000", q.BuyAmount)
	assert.Equal(t, "solana-flat", q.BuyAmountPath)
	assert.InDelta(t, 1.3, q.PriceImpactPercent, 1e-9)
	assert.Equal(t, "AQAB", q.TransactionPayload)
	require.Len(t, q.Sources, 2)
	assert.Equal(t, "Raydium", q.Sources[0].Name)
	assert.Equal(t, "60", q.Sources[0].Proportion)
}

func TestNormalizeSolana_MissingOutAmount(t *testing.T) {
	_, err := NormalizeSolana([]byte(`{"routePlan":[]}`), solanaRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
}
