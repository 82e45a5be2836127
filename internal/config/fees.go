package config

import (
	"errors"
	"fmt"

	"github.com/andrew-solarstorm/go-packages/common"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

// DefaultFeeTiers is the volume-discount table applied when FEE_TIERS_CONFIG
// is not set. Thresholds are inclusive lower bounds in USD.
var DefaultFeeTiers = []domain.FeeTier{
	{ID: "T1_0_1k", ThresholdUSD: 0, FeePercent: 0.35},
	{ID: "T2_1k_5k", ThresholdUSD: 1000, FeePercent: 0.30},
	{ID: "T3_5k_10k", ThresholdUSD: 5000, FeePercent: 0.25},
	{ID: "T4_10k_50k", ThresholdUSD: 10000, FeePercent: 0.20},
	{ID: "T5_50k_100k", ThresholdUSD: 50000, FeePercent: 0.15},
	{ID: "T6_100k_plus", ThresholdUSD: 100000, FeePercent: 0.10},
}

type FeesConfig struct {
	// Tiers ascending by ThresholdUSD with non-increasing FeePercent.
	Tiers []domain.FeeTier

	// MaxFeePercent is a hard safety cap applied after tier lookup.
	MaxFeePercent float64

	// FallbackFeePercent applies when no USD valuation is available.
	FallbackFeePercent float64

	TieredEnabled bool
}

func (c *FeesConfig) Key() string {
	return FEES_CONFIG_KEY
}

func (c *FeesConfig) Load() error {
	c.Tiers = DefaultFeeTiers
	if raw := common.GetEnvOrDefault("FEE_TIERS_CONFIG", ""); raw != "" {
		var tiers []domain.FeeTier
		if err := sonic.Unmarshal([]byte(raw), &tiers); err != nil {
			log.Warn().Err(err).Msg("[feesConfig] invalid FEE_TIERS_CONFIG, using defaults")
		} else {
			c.Tiers = tiers
		}
	}

	c.MaxFeePercent = 1.0
	c.FallbackFeePercent = 0.30
	c.TieredEnabled = common.GetEnvOrDefault("FEE_TIERED_ENABLED", "true") == "true"

	return c.Validate()
}

func (c *FeesConfig) Validate() error {
	if len(c.Tiers) == 0 {
		return errors.New("fee tier table must not be empty")
	}
	for i := 1; i < len(c.Tiers); i++ {
		prev, cur := c.Tiers[i-1], c.Tiers[i]
		if cur.ThresholdUSD <= prev.ThresholdUSD {
			return fmt.Errorf("fee tiers must ascend by threshold: %q then %q", prev.ID, cur.ID)
		}
		if cur.FeePercent > prev.FeePercent {
			return fmt.Errorf("fee percent must not increase with volume: %q then %q", prev.ID, cur.ID)
		}
	}
	if c.MaxFeePercent <= 0 {
		return errors.New("max fee percent must be positive")
	}
	return nil
}
