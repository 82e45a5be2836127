package domain

import (
	"strings"
)

// Chain identifies a supported network. EVM chains carry a numeric chain ID;
// Solana is the single non-EVM network.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainBSC      Chain = "bsc"
	ChainPolygon  Chain = "polygon"
	ChainSolana   Chain = "solana"
)

// EVM chain IDs as used by wallets and the upstream quote API.
const (
	ChainIDEthereum = 1
	ChainIDBSC      = 56
	ChainIDPolygon  = 137
)

var chainByID = map[int]Chain{
	ChainIDEthereum: ChainEthereum,
	ChainIDBSC:      ChainBSC,
	ChainIDPolygon:  ChainPolygon,
}

var idByChain = map[Chain]int{
	ChainEthereum: ChainIDEthereum,
	ChainBSC:      ChainIDBSC,
	ChainPolygon:  ChainIDPolygon,
}

// ChainFromID maps an EVM chain ID to its Chain. Returns false for unknown IDs.
func ChainFromID(id int) (Chain, bool) {
	c, ok := chainByID[id]
	return c, ok
}

// ParseChain normalizes a chain name. Returns false for unsupported names.
func ParseChain(name string) (Chain, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ethereum", "eth":
		return ChainEthereum, true
	case "bsc", "bnb", "binance":
		return ChainBSC, true
	case "polygon", "matic":
		return ChainPolygon, true
	case "solana", "sol":
		return ChainSolana, true
	default:
		return "", false
	}
}

func (c Chain) IsEVM() bool {
	return c != ChainSolana && c != ""
}

// ID returns the EVM chain ID, or 0 for non-EVM chains.
func (c Chain) ID() int {
	return idByChain[c]
}

func (c Chain) String() string {
	return string(c)
}

// Token is a search/selection result from one of the resolution providers.
type Token struct {
	Chain        Chain   `json:"chain"`
	Address      string  `json:"address"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Decimals     uint8   `json:"decimals"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	LiquidityUSD float64 `json:"liquidityUsd,omitempty"`
	PriceUSD     float64 `json:"priceUsd,omitempty"`
	Source       string  `json:"source,omitempty"`
}

// Key is the dedup identity: chain plus normalized address. EVM addresses
// are hex and compared case-insensitively; Solana mints are base58 and kept
// as-is since base58 casing is significant.
func (t Token) Key() string {
	return string(t.Chain) + ":" + NormalizeAddress(t.Chain, t.Address)
}

// NormalizeAddress folds an address into its comparison form.
func NormalizeAddress(chain Chain, addr string) string {
	if chain.IsEVM() {
		return strings.ToLower(addr)
	}
	return addr
}

// SameAddress reports whether two addresses refer to the same token on chain.
func SameAddress(chain Chain, a, b string) bool {
	if chain.IsEVM() {
		return strings.EqualFold(a, b)
	}
	return a == b
}
