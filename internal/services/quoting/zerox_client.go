package quoting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

// ZeroXClient fetches swap quotes from a 0x-style aggregator. One client
// serves every EVM chain; the base URL is selected per request.
type ZeroXClient struct {
	endpoints  map[domain.Chain]string
	apiKey     string
	feeRecv    string
	feePercent string
	http       *http.Client
}

func NewZeroXClient(conf *config.UpstreamConfig) *ZeroXClient {
	return &ZeroXClient{
		endpoints:  conf.EVMQuoteEndpoints,
		apiKey:     conf.EVMAPIKey,
		feeRecv:    conf.FeeRecipient,
		feePercent: conf.BuyTokenFeePercent,
		http:       &http.Client{Timeout: conf.RequestTimeout},
	}
}

// FetchQuote returns the raw upstream response body. The platform fee is
// relayed as query parameters and collected upstream, never handled locally.
func (c *ZeroXClient) FetchQuote(ctx context.Context, req domain.QuoteRequest) ([]byte, error) {
	base, ok := c.endpoints[req.Chain]
	if !ok {
		return nil, fmt.Errorf("%w: no quote endpoint for chain %s", common.ErrValidation, req.Chain)
	}

	params := url.Values{}
	params.Set("sellToken", req.SellToken)
	params.Set("buyToken", req.BuyToken)
	params.Set("sellAmount", req.SellAmount)
	if req.TakerAddress != "" {
		params.Set("takerAddress", req.TakerAddress)
	}
	if c.feeRecv != "" {
		params.Set("feeRecipient", c.feeRecv)
		params.Set("buyTokenPercentageFee", c.feePercent)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/swap/v1/quote?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		httpReq.Header.Set("0x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// 0x answers 4xx for unroutable pairs and insufficient liquidity.
		return nil, fmt.Errorf("%w: upstream status %d", common.ErrNormalization, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: upstream status %d", common.ErrNetwork, resp.StatusCode)
	}
}
