package tokens

import (
	"sort"
	"strings"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

// Relevance bands for ranking search results against the query. The band is
// the primary sort key; liquidity only breaks ties within a band, so the
// provider's relevance judgment is never overridden by a big pool.
const (
	rankExactSymbol = iota
	rankSymbolPrefix
	rankNamePrefix
	rankOther
)

// Rank merges, orders, and deduplicates raw provider results for one query.
//
//  1. Results not on the requested chain are dropped (zero chain keeps all).
//  2. The excluded address is filtered case-insensitively per chain rules.
//  3. Stable sort by relevance band, then descending liquidity within a band,
//     missing liquidity counting as zero.
//  4. Dedup by (chain, address), keeping the first occurrence.
func Rank(results []domain.Token, query string, chain domain.Chain, excludeAddress string) []domain.Token {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.Token, 0, len(results))
	for _, t := range results {
		if chain != "" && t.Chain != chain {
			continue
		}
		if excludeAddress != "" && domain.SameAddress(t.Chain, t.Address, excludeAddress) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ri, rj := relevanceBand(filtered[i], q), relevanceBand(filtered[j], q)
		if ri != rj {
			return ri < rj
		}
		return filtered[i].LiquidityUSD > filtered[j].LiquidityUSD
	})

	seen := make(map[string]struct{}, len(filtered))
	out := filtered[:0]
	dropped := 0
	for _, t := range filtered {
		key := t.Key()
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	if dropped > 0 {
		metrics.SearchResultsDeduped.Add(float64(dropped))
	}
	return out
}

func relevanceBand(t domain.Token, query string) int {
	symbol := strings.ToLower(t.Symbol)
	switch {
	case symbol == query:
		return rankExactSymbol
	case strings.HasPrefix(symbol, query):
		return rankSymbolPrefix
	case strings.HasPrefix(strings.ToLower(t.Name), query):
		return rankNamePrefix
	default:
		return rankOther
	}
}

// IsProbablyAddress reports whether a query looks like a contract or mint
// address rather than a name. Heuristic, used for UI hinting only.
func IsProbablyAddress(query string) bool {
	query = strings.TrimSpace(query)
	return strings.HasPrefix(query, "0x") || len(query) >= 32
}

// TokensFromPairs projects pair search results onto their base tokens, which
// is what a token search surface wants to show.
func TokensFromPairs(pairs []domain.Pair) []domain.Token {
	out := make([]domain.Token, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.BaseToken)
	}
	return out
}
