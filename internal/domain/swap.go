package domain

import "time"

// SwapRecord is one completed swap logged by the UI after wallet submission.
// Purely informational: the platform never holds funds or keys.
type SwapRecord struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	Chain         Chain     `json:"chain"`
	TokenIn       string    `json:"tokenIn"`
	TokenOut      string    `json:"tokenOut"`
	AmountIn      string    `json:"amountIn"`
	AmountOut     string    `json:"amountOut"`
	FeeAmount     string    `json:"feeAmount"`
	TxHash        string    `json:"txHash,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
