package tokens

import (
	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

// popularTokens is the static default list shown before the user has typed a
// query. Addresses are the canonical mainnet deployments.
var popularTokens = map[domain.Chain][]domain.Token{
	domain.ChainEthereum: {
		{Chain: domain.ChainEthereum, Symbol: "ETH", Name: "Ethereum", Address: common.NativeTokenAddress, Decimals: 18},
		{Chain: domain.ChainEthereum, Symbol: "WETH", Name: "Wrapped Ether", Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Decimals: 18},
		{Chain: domain.ChainEthereum, Symbol: "USDT", Name: "Tether USD", Address: "0xdac17f958d2ee523a2206206994597c13d831ec7", Decimals: 6},
		{Chain: domain.ChainEthereum, Symbol: "USDC", Name: "USD Coin", Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Decimals: 6},
		{Chain: domain.ChainEthereum, Symbol: "WBTC", Name: "Wrapped Bitcoin", Address: "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", Decimals: 8},
		{Chain: domain.ChainEthereum, Symbol: "DAI", Name: "Dai Stablecoin", Address: "0x6b175474e89094c44da98b954eedeac495271d0f", Decimals: 18},
		{Chain: domain.ChainEthereum, Symbol: "LINK", Name: "Chainlink", Address: "0x514910771af9ca656af840dff83e8264ecf986ca", Decimals: 18},
		{Chain: domain.ChainEthereum, Symbol: "UNI", Name: "Uniswap", Address: "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", Decimals: 18},
	},
	domain.ChainBSC: {
		{Chain: domain.ChainBSC, Symbol: "BNB", Name: "BNB", Address: common.NativeTokenAddress, Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "WBNB", Name: "Wrapped BNB", Address: "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "USDT", Name: "Tether USD", Address: "0x55d398326f99059ff775485246999027b3197955", Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "USDC", Name: "USD Coin", Address: "0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d", Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "BTCB", Name: "Bitcoin BEP2", Address: "0x7130d2a12b9bcbfae4f2634d864a1ee1ce3ead9c", Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "ETH", Name: "Ethereum Token", Address: "0x2170ed0880ac9a755fd29b2688956bd959f933f8", Decimals: 18},
		{Chain: domain.ChainBSC, Symbol: "CAKE", Name: "PancakeSwap", Address: "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82", Decimals: 18},
	},
	domain.ChainPolygon: {
		{Chain: domain.ChainPolygon, Symbol: "MATIC", Name: "Polygon", Address: common.NativeTokenAddress, Decimals: 18},
		{Chain: domain.ChainPolygon, Symbol: "WMATIC", Name: "Wrapped Matic", Address: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270", Decimals: 18},
		{Chain: domain.ChainPolygon, Symbol: "USDT", Name: "Tether USD", Address: "0xc2132d05d31c914a87c6611c10748aeb04b58e8f", Decimals: 6},
		{Chain: domain.ChainPolygon, Symbol: "USDC", Name: "USD Coin", Address: "0x2791bca1f2de4661ed88a30c99a7a9449aa84174", Decimals: 6},
		{Chain: domain.ChainPolygon, Symbol: "WETH", Name: "Wrapped Ether", Address: "0x7ceb23fd6bc0add59e62ac25578270cff1b9f619", Decimals: 18},
		{Chain: domain.ChainPolygon, Symbol: "DAI", Name: "Dai Stablecoin", Address: "0x8f3cf7ad23cd3cadbd9735aff958023239c6a063", Decimals: 18},
	},
	domain.ChainSolana: {
		{Chain: domain.ChainSolana, Symbol: "SOL", Name: "Solana", Address: common.WrappedSOLMint.String(), Decimals: 9},
		{Chain: domain.ChainSolana, Symbol: "USDT", Name: "Tether USD", Address: common.USDTMint.String(), Decimals: 6},
		{Chain: domain.ChainSolana, Symbol: "USDC", Name: "USD Coin", Address: common.USDCMint.String(), Decimals: 6},
		{Chain: domain.ChainSolana, Symbol: "RAY", Name: "Raydium", Address: "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R", Decimals: 6},
		{Chain: domain.ChainSolana, Symbol: "BONK", Name: "Bonk", Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Decimals: 5},
		{Chain: domain.ChainSolana, Symbol: "JUP", Name: "Jupiter", Address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Decimals: 6},
	},
}

// PopularTokens returns the static defaults for a chain. The slice is a copy;
// callers may reorder it.
func PopularTokens(chain domain.Chain) []domain.Token {
	defaults := popularTokens[chain]
	out := make([]domain.Token, len(defaults))
	copy(out, defaults)
	return out
}
