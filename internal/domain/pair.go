package domain

// Pair is one trading pair as reported by the search provider. Pairs are
// ephemeral search results, never persisted.
type Pair struct {
	Chain        Chain   `json:"chain"`
	DexID        string  `json:"dexId"`
	PairAddress  string  `json:"pairAddress"`
	BaseToken    Token   `json:"baseToken"`
	QuoteToken   Token   `json:"quoteToken"`
	PriceUSD     string  `json:"priceUsd,omitempty"`
	LiquidityUSD float64 `json:"liquidityUsd"`
	VolumeH24    float64 `json:"volumeH24"`
	URL          string  `json:"url,omitempty"`
}
