// Package common contains common constants and variables used across services
package common

import "github.com/gagliardetto/solana-go"

// Sentinel address the EVM upstream uses for a chain's native coin.
const NativeTokenAddress = "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

var (
	WrappedSOLMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	USDCMint       = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	USDTMint       = solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")
)

// Minimum query length before a token search is dispatched; shorter input is
// treated as "not typed yet" rather than an empty result.
const MinSearchQueryLength = 2
