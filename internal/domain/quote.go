package domain

// QuoteRequest is the chain-agnostic input for a swap quote.
type QuoteRequest struct {
	Chain           Chain  `json:"chain"`
	SellToken       string `json:"sellToken"`
	BuyToken        string `json:"buyToken"`
	SellAmount      string `json:"sellAmount"` // integer base units
	TakerAddress    string `json:"takerAddress"`
	SellTokenSymbol string `json:"sellTokenSymbol,omitempty"`
	BuyTokenSymbol  string `json:"buyTokenSymbol,omitempty"`
	// SellAmountUSD is the approximate USD notional of the sell side, used
	// only for fee-tier lookup. Zero means unknown.
	SellAmountUSD float64 `json:"sellAmountUsd,omitempty"`
	// CustomSlippage, when non-nil, bypasses the auto-slippage policy.
	CustomSlippage *float64 `json:"customSlippage,omitempty"`
}

// FeeTier is one volume-discount bracket. Tiers are configured ascending by
// ThresholdUSD (inclusive lower bound) with non-increasing FeePercent.
type FeeTier struct {
	ID           string  `json:"id"`
	ThresholdUSD float64 `json:"thresholdUsd"`
	FeePercent   float64 `json:"feePercent"`
}

// NextTier describes the next volume bracket a trader could reach.
type NextTier struct {
	TierID          string  `json:"tierId"`
	FeePercent      float64 `json:"feePercent"`
	AmountNeededUSD float64 `json:"amountNeededUsd"`
	ThresholdUSD    float64 `json:"thresholdUsd"`
}

// FeeBreakdown is the output of the tiered fee calculation.
type FeeBreakdown struct {
	FeeTier     string   `json:"feeTier"`
	FeePercent  float64  `json:"feePercent"`
	FeeUSD      *float64 `json:"feeUsd"`      // nil when USD notional unavailable
	AmountInUSD *float64 `json:"amountInUsd"` // nil when USD notional unavailable
	// FeeAmount is the fee expressed in buy-token base units, rounded down.
	FeeAmount    string    `json:"feeAmount,omitempty"`
	NextTier     *NextTier `json:"nextTier,omitempty"`
	Notes        string    `json:"notes"`
	QuoteVersion string    `json:"quoteVersion"`
}

// RouteSource is one liquidity source the upstream aggregator routed through.
type RouteSource struct {
	Name       string `json:"name"`
	Proportion string `json:"proportion,omitempty"`
}

// Quote is the canonical post-normalization quote. Downstream consumers never
// see which upstream family produced it.
type Quote struct {
	Chain              Chain         `json:"chain"`
	SellToken          string        `json:"sellToken"`
	BuyToken           string        `json:"buyToken"`
	SellAmount         string        `json:"sellAmount"` // integer base units
	BuyAmount          string        `json:"buyAmount"`  // integer base units, always present
	Sources            []RouteSource `json:"sources,omitempty"`
	GasEstimate        string        `json:"gasEstimate,omitempty"`
	PriceImpactPercent float64       `json:"priceImpactPercent"`
	// TransactionPayload is the opaque serialized transaction returned by the
	// non-EVM upstream, relayed verbatim for the user's wallet to sign.
	TransactionPayload string `json:"transactionPayload,omitempty"`
	// BuyAmountPath records which response location the buy amount was read
	// from, for debugging upstream schema drift.
	BuyAmountPath string `json:"buyAmountPath,omitempty"`

	Fee      FeeBreakdown     `json:"fee"`
	Slippage SlippageDecision `json:"slippage"`
}

// SlippageMode selects between the policy engine and a user-supplied value.
type SlippageMode string

const (
	SlippageAuto   SlippageMode = "auto"
	SlippageCustom SlippageMode = "custom"
)

// SlippageDecision is the recommended (or user-chosen) slippage tolerance.
type SlippageDecision struct {
	Mode    SlippageMode `json:"mode"`
	Value   float64      `json:"value"` // percent, 0 < value <= 50
	Warning string       `json:"warning,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}
