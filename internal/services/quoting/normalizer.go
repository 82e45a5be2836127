package quoting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

// Buy-amount locations in 0x-style responses, probed in priority order.
// Older API versions put it at the top level, newer ones nest it under the
// transaction object, and some error-ish responses only carry it in issues.
const (
	buyAmountPathTop         = "evm-top"
	buyAmountPathTransaction = "evm-transaction"
	buyAmountPathIssues      = "evm-issues"
	buyAmountPathSolana      = "solana-flat"
)

// defaultPriceImpact is reported when the upstream omits impact and no USD
// valuation is available to derive it from.
const defaultPriceImpact = 0.1

// NormalizeEVM converts a raw 0x-style aggregator response into the canonical
// quote shape. The buy amount is probed at its three known locations; a
// response with none of them is rejected rather than passed through.
func NormalizeEVM(raw []byte, req domain.QuoteRequest) (*domain.Quote, error) {
	if !gjson.ValidBytes(raw) {
		metrics.NormalizationFailures.WithLabelValues("evm").Inc()
		return nil, fmt.Errorf("%w: malformed upstream response", common.ErrNormalization)
	}
	body := gjson.ParseBytes(raw)

	buyAmount, path := probeBuyAmount(body)
	if buyAmount == "" {
		metrics.NormalizationFailures.WithLabelValues("evm").Inc()
		return nil, fmt.Errorf("%w: no buy amount at any known location", common.ErrNormalization)
	}

	q := &domain.Quote{
		Chain:         req.Chain,
		SellToken:     req.SellToken,
		BuyToken:      req.BuyToken,
		SellAmount:    req.SellAmount,
		BuyAmount:     buyAmount,
		BuyAmountPath: path,
	}

	if sources := body.Get("sources"); sources.IsArray() {
		for _, s := range sources.Array() {
			// 0x reports every candidate source, most with zero share.
			prop := s.Get("proportion").String()
			if prop == "" || prop == "0" {
				continue
			}
			q.Sources = append(q.Sources, domain.RouteSource{
				Name:       s.Get("name").String(),
				Proportion: prop,
			})
		}
	}

	if gas := firstString(body, "transaction.gas", "estimatedGas", "gas"); gas != "" {
		q.GasEstimate = gas
	}
	if tx := body.Get("transaction"); tx.Exists() && tx.IsObject() {
		q.TransactionPayload = tx.Raw
	}

	q.PriceImpactPercent = resolvePriceImpact(body, req.SellAmountUSD)
	metrics.PriceImpact.Observe(q.PriceImpactPercent)

	return q, nil
}

// NormalizeSolana converts a raw Jupiter-style response. The schema is flat:
// outAmount and priceImpactPct live at the top level and the route plan
// carries per-leg source labels.
func NormalizeSolana(raw []byte, req domain.QuoteRequest) (*domain.Quote, error) {
	if !gjson.ValidBytes(raw) {
		metrics.NormalizationFailures.WithLabelValues("solana").Inc()
		return nil, fmt.Errorf("%w: malformed upstream response", common.ErrNormalization)
	}
	body := gjson.ParseBytes(raw)

	outAmount := body.Get("outAmount").String()
	if outAmount == "" {
		metrics.NormalizationFailures.WithLabelValues("solana").Inc()
		return nil, fmt.Errorf("%w: missing outAmount", common.ErrNormalization)
	}

	q := &domain.Quote{
		Chain:         req.Chain,
		SellToken:     req.SellToken,
		BuyToken:      req.BuyToken,
		SellAmount:    req.SellAmount,
		BuyAmount:     outAmount,
		BuyAmountPath: buyAmountPathSolana,
	}

	if plan := body.Get("routePlan"); plan.IsArray() {
		for _, leg := range plan.Array() {
			name := leg.Get("swapInfo.label").String()
			if name == "" {
				continue
			}
			q.Sources = append(q.Sources, domain.RouteSource{
				Name:       name,
				Proportion: leg.Get("percent").String(),
			})
		}
	}

	if tx := body.Get("swapTransaction").String(); tx != "" {
		q.TransactionPayload = tx
	}

	if impact := body.Get("priceImpactPct"); impact.Exists() {
		// Jupiter reports impact as a fraction string, e.g. "0.013" for 1.3%.
		if v, err := strconv.ParseFloat(strings.TrimSpace(impact.String()), 64); err == nil {
			q.PriceImpactPercent = v * 100
		}
	}
	metrics.PriceImpact.Observe(q.PriceImpactPercent)

	return q, nil
}

func probeBuyAmount(body gjson.Result) (string, string) {
	if v := body.Get("buyAmount").String(); v != "" {
		return v, buyAmountPathTop
	}
	if v := body.Get("transaction.buyAmount").String(); v != "" {
		return v, buyAmountPathTransaction
	}
	if v := body.Get("issues.buyAmount").String(); v != "" {
		return v, buyAmountPathIssues
	}
	return "", ""
}

func firstString(body gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := body.Get(p).String(); v != "" {
			return v
		}
	}
	return ""
}

// resolvePriceImpact prefers the upstream's own estimate, then derives one
// from the USD notionals when both sides carry them, then falls back to a
// small placeholder so the slippage engine always has an input.
func resolvePriceImpact(body gjson.Result, sellUSD float64) float64 {
	if impact := firstString(body, "estimatedPriceImpact", "priceImpact"); impact != "" {
		if v, err := strconv.ParseFloat(impact, 64); err == nil && v >= 0 {
			return v
		}
	}
	buyUSD := body.Get("buyAmountUsd").Float()
	if sellUSD == 0 {
		sellUSD = body.Get("sellAmountUsd").Float()
	}
	if sellUSD > 0 && buyUSD > 0 {
		impact := (sellUSD - buyUSD) / sellUSD * 100
		if impact < 0 {
			impact = -impact
		}
		return impact
	}
	return defaultPriceImpact
}
