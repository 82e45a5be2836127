package tokens

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

const searchSource = "dexscreener"

// DexScreenerClient queries a dexscreener-style pair search API. One search
// call covers every indexed provider, so the resolver dispatches exactly one
// request per query.
type DexScreenerClient struct {
	baseURL string
	http    *http.Client
}

func NewDexScreenerClient(conf *config.UpstreamConfig) *DexScreenerClient {
	return &DexScreenerClient{
		baseURL: conf.SearchBaseURL,
		http:    &http.Client{Timeout: conf.RequestTimeout},
	}
}

// SearchPairs runs a free-text pair search. The provider's response order is
// its relevance ranking and is preserved.
func (c *DexScreenerClient) SearchPairs(ctx context.Context, query string) ([]domain.Pair, error) {
	endpoint := c.baseURL + "/latest/dex/search?q=" + url.QueryEscape(query)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: search status %d", common.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	return parsePairs(body), nil
}

// TokenPairs lists the pairs trading a given token address.
func (c *DexScreenerClient) TokenPairs(ctx context.Context, address string) ([]domain.Pair, error) {
	endpoint := c.baseURL + "/latest/dex/tokens/" + url.PathEscape(address)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: search status %d", common.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	return parsePairs(body), nil
}

func parsePairs(raw []byte) []domain.Pair {
	var out []domain.Pair
	gjson.GetBytes(raw, "pairs").ForEach(func(_, p gjson.Result) bool {
		chain, ok := domain.ParseChain(p.Get("chainId").String())
		if !ok {
			// Pairs on chains we do not route are skipped, not errors.
			return true
		}
		out = append(out, domain.Pair{
			Chain:        chain,
			DexID:        p.Get("dexId").String(),
			PairAddress:  p.Get("pairAddress").String(),
			BaseToken:    parseTokenSide(chain, p, "baseToken"),
			QuoteToken:   parseTokenSide(chain, p, "quoteToken"),
			PriceUSD:     p.Get("priceUsd").String(),
			LiquidityUSD: p.Get("liquidity.usd").Float(),
			VolumeH24:    p.Get("volume.h24").Float(),
			URL:          p.Get("url").String(),
		})
		return true
	})
	return out
}

func parseTokenSide(chain domain.Chain, pair gjson.Result, side string) domain.Token {
	t := domain.Token{
		Chain:   chain,
		Address: pair.Get(side + ".address").String(),
		Symbol:  pair.Get(side + ".symbol").String(),
		Name:    pair.Get(side + ".name").String(),
		Source:  searchSource,
	}
	if side == "baseToken" {
		// The pair's image and liquidity describe its base token.
		t.LogoURL = pair.Get("info.imageUrl").String()
		t.LiquidityUSD = pair.Get("liquidity.usd").Float()
		if price, err := strconv.ParseFloat(pair.Get("priceUsd").String(), 64); err == nil {
			t.PriceUSD = price
		}
	}
	return t
}
