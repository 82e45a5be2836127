package config

import (
	"strings"

	"github.com/andrew-solarstorm/go-packages/common"
)

// Symbol lists seeding the token risk classifier. Deliberately small and
// overridable; membership is a heuristic, not a security judgement.
var (
	defaultStablecoins = []string{"USDT", "USDC", "DAI", "BUSD", "USDD", "FRAX", "TUSD", "USDP", "GUSD", "FDUSD"}
	defaultMajors      = []string{"ETH", "WETH", "BTC", "WBTC", "BNB", "WBNB", "MATIC", "WMATIC", "SOL", "WSOL"}
	defaultBluechips   = []string{"UNI", "AAVE", "LINK", "SUSHI", "CAKE", "CRV", "MKR", "COMP", "SNX", "YFI"}
)

type RiskConfig struct {
	Stablecoins []string
	Majors      []string
	Bluechips   []string
}

func (c *RiskConfig) Key() string {
	return RISK_CONFIG_KEY
}

func (c *RiskConfig) Load() error {
	c.Stablecoins = envSymbolList("RISK_STABLECOINS", defaultStablecoins)
	c.Majors = envSymbolList("RISK_MAJOR_TOKENS", defaultMajors)
	c.Bluechips = envSymbolList("RISK_BLUECHIP_TOKENS", defaultBluechips)
	return nil
}

func (c *RiskConfig) Validate() error {
	return nil
}

func envSymbolList(key string, def []string) []string {
	raw := common.GetEnvOrDefault(key, "")
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToUpper(strings.TrimSpace(p)); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
