// Package fees implements the tiered platform fee calculation.
// Fees are volume-discounted by the USD notional of the current swap only:
// no user history, no custody, no storage of funds or keys.
package fees

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

const (
	QuoteVersionTiered   = "v1-tiered"
	QuoteVersionFallback = "v1-tiered-fallback"
)

// Calculator resolves a USD notional to its fee tier. The tier table is
// injected configuration so tests can swap it.
type Calculator struct {
	tiers       []domain.FeeTier
	maxPercent  float64
	fallbackPct float64
}

func NewCalculator(conf *config.FeesConfig) *Calculator {
	return &Calculator{
		tiers:       conf.Tiers,
		maxPercent:  conf.MaxFeePercent,
		fallbackPct: conf.FallbackFeePercent,
	}
}

// Calculate returns the fee breakdown for a trade of amountUSD. Total for
// every amountUSD >= 0: amounts below the lowest threshold resolve to the
// base tier. Negative input is the caller's validation bug.
func (c *Calculator) Calculate(amountUSD float64) domain.FeeBreakdown {
	if amountUSD < 0 {
		amountUSD = 0
	}

	// Greatest lower bound: last tier whose threshold <= amount.
	idx := 0
	for i, tier := range c.tiers {
		if tier.ThresholdUSD <= amountUSD {
			idx = i
		} else {
			break
		}
	}
	matched := c.tiers[idx]

	feePercent := matched.FeePercent
	notes := fmt.Sprintf("Tiered platform fee applied: %g%%", feePercent)
	if feePercent > c.maxPercent {
		feePercent = c.maxPercent
		notes = fmt.Sprintf("Fee capped at %g%% (safety limit)", c.maxPercent)
	}

	// Banker's rounding, sub-cent precision kept so small trades still show
	// a meaningful fee.
	feeUSD, _ := decimal.NewFromFloat(amountUSD).
		Mul(decimal.NewFromFloat(feePercent)).
		Div(decimal.NewFromInt(100)).
		RoundBank(6).
		Float64()
	amountRounded, _ := decimal.NewFromFloat(amountUSD).RoundBank(2).Float64()

	var next *domain.NextTier
	if idx < len(c.tiers)-1 {
		nt := c.tiers[idx+1]
		if needed := nt.ThresholdUSD - amountUSD; needed > 0 {
			neededRounded, _ := decimal.NewFromFloat(needed).RoundBank(2).Float64()
			next = &domain.NextTier{
				TierID:          nt.ID,
				FeePercent:      nt.FeePercent,
				AmountNeededUSD: neededRounded,
				ThresholdUSD:    nt.ThresholdUSD,
			}
		}
	}

	return domain.FeeBreakdown{
		FeeTier:      matched.ID,
		FeePercent:   feePercent,
		FeeUSD:       &feeUSD,
		AmountInUSD:  &amountRounded,
		NextTier:     next,
		Notes:        notes,
		QuoteVersion: QuoteVersionTiered,
	}
}

// Fallback returns the flat fee applied when no USD valuation is available.
func (c *Calculator) Fallback(reason string) domain.FeeBreakdown {
	if reason == "" {
		reason = "USD price unavailable"
	}
	return domain.FeeBreakdown{
		FeeTier:      "FALLBACK",
		FeePercent:   c.fallbackPct,
		Notes:        fmt.Sprintf("%s. Using fallback fee: %g%%", reason, c.fallbackPct),
		QuoteVersion: QuoteVersionFallback,
	}
}
