package quoting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gagliardetto/solana-go"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

// JupiterClient fetches swap quotes from a Jupiter-style aggregator.
type JupiterClient struct {
	baseURL string
	http    *http.Client
}

func NewJupiterClient(conf *config.UpstreamConfig) *JupiterClient {
	return &JupiterClient{
		baseURL: conf.SolanaQuoteURL,
		http:    &http.Client{Timeout: conf.RequestTimeout},
	}
}

func (c *JupiterClient) FetchQuote(ctx context.Context, req domain.QuoteRequest) ([]byte, error) {
	if _, err := solana.PublicKeyFromBase58(req.SellToken); err != nil {
		return nil, fmt.Errorf("%w: invalid input mint: %v", common.ErrValidation, err)
	}
	if _, err := solana.PublicKeyFromBase58(req.BuyToken); err != nil {
		return nil, fmt.Errorf("%w: invalid output mint: %v", common.ErrValidation, err)
	}

	params := url.Values{}
	params.Set("inputMint", req.SellToken)
	params.Set("outputMint", req.BuyToken)
	params.Set("amount", req.SellAmount)
	if req.TakerAddress != "" {
		params.Set("userPublicKey", req.TakerAddress)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quote?"+params.Encode(), nil)
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("%w: upstream status %d", common.ErrNormalization, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: upstream status %d", common.ErrNetwork, resp.StatusCode)
	}
}
