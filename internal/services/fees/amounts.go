package fees

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// feePercentScale expresses the fee percent with four fractional digits,
// enough to represent every configurable tier exactly (0.0001% granularity).
const feePercentScale = 1_000_000

// ApplyFeeToAmount splits an integer base-unit amount into (net, fee) for the
// given fee percent. The fee rounds down, so the rounding benefit always goes
// to the user. Amounts must be non-negative integer strings; EVM amounts fit
// a uint256, anything larger is rejected.
func ApplyFeeToAmount(amountIn string, feePercent float64) (net string, fee string, err error) {
	amount, parseErr := uint256.FromDecimal(amountIn)
	if parseErr != nil {
		return "", "", fmt.Errorf("invalid base-unit amount %q: %w", amountIn, parseErr)
	}
	if feePercent < 0 {
		return "", "", fmt.Errorf("negative fee percent %g", feePercent)
	}

	// fee = amount * (feePercent/100), computed as amount * scaled / (100 * scale)
	scaled := new(big.Float).Mul(big.NewFloat(feePercent), big.NewFloat(feePercentScale))
	scaledInt, _ := scaled.Int(nil)
	if !scaledInt.IsUint64() {
		return "", "", fmt.Errorf("fee percent %g out of range", feePercent)
	}

	feeAmt, overflow := new(uint256.Int).MulOverflow(amount, uint256.NewInt(scaledInt.Uint64()))
	if overflow {
		// Fall back to big.Int for amounts near the uint256 ceiling.
		bigAmount := amount.ToBig()
		bigFee := new(big.Int).Mul(bigAmount, scaledInt)
		bigFee.Div(bigFee, big.NewInt(100*feePercentScale))
		bigNet := new(big.Int).Sub(bigAmount, bigFee)
		return bigNet.String(), bigFee.String(), nil
	}
	feeAmt.Div(feeAmt, uint256.NewInt(100*feePercentScale))

	netAmt := new(uint256.Int).Sub(amount, feeAmt)
	return netAmt.Dec(), feeAmt.Dec(), nil
}
