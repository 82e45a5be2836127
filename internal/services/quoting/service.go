package quoting

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/fees"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/slippage"
)

const QUOTE_SERVICE = "quote-service"

const fallbackFeeReason = "USD valuation unavailable, flat fee applied"

// Service orchestrates the quote pipeline: validate, fetch from the chain
// family's upstream, normalize, then attach fee and slippage decisions.
type Service struct {
	container.BaseDIInstance
	logger *common.ServiceLogger

	upstream *config.UpstreamConfig

	evm    *ZeroXClient
	solana *JupiterClient

	feeCalc  *fees.Calculator
	tiered   bool
	slippage *slippage.Engine
	cache    *Cache
}

func (svc *Service) ID() string {
	return QUOTE_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = common.NewServiceLogger(svc)
	svc.upstream = c.GetConfig(config.UPSTREAM_CONFIG_KEY).(*config.UpstreamConfig)
	feesConf := c.GetConfig(config.FEES_CONFIG_KEY).(*config.FeesConfig)
	riskConf := c.GetConfig(config.RISK_CONFIG_KEY).(*config.RiskConfig)

	svc.evm = NewZeroXClient(svc.upstream)
	svc.solana = NewJupiterClient(svc.upstream)
	svc.feeCalc = fees.NewCalculator(feesConf)
	svc.tiered = feesConf.TieredEnabled
	svc.slippage = slippage.NewEngine(slippage.NewClassifier(riskConf))
	svc.cache = NewCache(svc.upstream.QuoteCacheTTL)

	return nil
}

func (svc *Service) Start() error {
	svc.cache.StartJanitor()
	return nil
}

func (svc *Service) Stop() error {
	svc.cache.Stop()
	return nil
}

// CacheSize reports the live quote cache entry count, for health reporting.
func (svc *Service) CacheSize() int {
	return svc.cache.Len()
}

// GetQuote runs the full pipeline for one request. Validation failures are
// returned before any network call; upstream failures carry the error
// taxonomy so the HTTP layer can map them to user-visible states.
func (svc *Service) GetQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	family := "evm"
	if !req.Chain.IsEVM() {
		family = "solana"
	}

	if err := validateRequest(req); err != nil {
		metrics.QuoteRequests.WithLabelValues(family, "invalid").Inc()
		return nil, err
	}

	// Custom slippage is validated up front so a bad value never costs an
	// upstream round trip.
	var customDecision *domain.SlippageDecision
	if req.CustomSlippage != nil {
		decision, err := slippage.Custom(*req.CustomSlippage)
		if err != nil {
			metrics.QuoteRequests.WithLabelValues(family, "invalid").Inc()
			return nil, err
		}
		customDecision = &decision
	}

	key := CacheKey(req)
	if cached, ok := svc.cache.Get(key); ok {
		quote := *cached
		svc.attachFee(&quote, req)
		svc.attachSlippage(&quote, req, customDecision)
		metrics.QuoteRequests.WithLabelValues(family, "cached").Inc()
		return &quote, nil
	}

	start := time.Now()
	quote, err := svc.fetchAndNormalize(ctx, req)
	metrics.QuoteDuration.WithLabelValues(family).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteRequests.WithLabelValues(family, "error").Inc()
		svc.logger.Error(err, "quote pipeline failed", "GetQuote")
		return nil, err
	}

	svc.cache.Set(key, quote)

	result := *quote
	svc.attachFee(&result, req)
	svc.attachSlippage(&result, req, customDecision)
	metrics.QuoteRequests.WithLabelValues(family, "ok").Inc()
	return &result, nil
}

func (svc *Service) fetchAndNormalize(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if req.Chain.IsEVM() {
		raw, err := svc.evm.FetchQuote(ctx, req)
		if err != nil {
			return nil, err
		}
		return NormalizeEVM(raw, req)
	}
	raw, err := svc.solana.FetchQuote(ctx, req)
	if err != nil {
		return nil, err
	}
	return NormalizeSolana(raw, req)
}

// attachFee picks tiered fees when the USD notional is known and the flat
// fallback otherwise. The fee is computed per response, never cached, so a
// cache hit with a different notional still gets the right tier.
func (svc *Service) attachFee(q *domain.Quote, req domain.QuoteRequest) {
	switch {
	case !svc.tiered:
		q.Fee = svc.feeCalc.Fallback("tiered fees disabled")
	case req.SellAmountUSD > 0:
		q.Fee = svc.feeCalc.Calculate(req.SellAmountUSD)
	default:
		q.Fee = svc.feeCalc.Fallback(fallbackFeeReason)
	}

	if _, feeUnits, err := fees.ApplyFeeToAmount(q.BuyAmount, q.Fee.FeePercent); err == nil {
		q.Fee.FeeAmount = feeUnits
	}
}

func (svc *Service) attachSlippage(q *domain.Quote, req domain.QuoteRequest, custom *domain.SlippageDecision) {
	if custom != nil {
		q.Slippage = *custom
		return
	}
	q.Slippage = svc.slippage.Auto(q.PriceImpactPercent, req.SellTokenSymbol, req.BuyTokenSymbol)
}

func validateRequest(req domain.QuoteRequest) error {
	if req.SellToken == "" || req.BuyToken == "" {
		return fmt.Errorf("%w: sell and buy tokens are required", common.ErrValidation)
	}
	if domain.SameAddress(req.Chain, req.SellToken, req.BuyToken) {
		return fmt.Errorf("%w: sell and buy tokens are identical", common.ErrValidation)
	}

	amount, ok := new(big.Int).SetString(strings.TrimSpace(req.SellAmount), 10)
	if !ok || amount.Sign() <= 0 {
		return fmt.Errorf("%w: sell amount must be a positive integer", common.ErrValidation)
	}

	if req.Chain.IsEVM() {
		if !ethcommon.IsHexAddress(req.SellToken) {
			return fmt.Errorf("%w: invalid sell token address", common.ErrValidation)
		}
		if !ethcommon.IsHexAddress(req.BuyToken) {
			return fmt.Errorf("%w: invalid buy token address", common.ErrValidation)
		}
		if req.TakerAddress != "" && !ethcommon.IsHexAddress(req.TakerAddress) {
			return fmt.Errorf("%w: invalid taker address", common.ErrValidation)
		}
		return nil
	}

	if _, err := solana.PublicKeyFromBase58(req.SellToken); err != nil {
		return fmt.Errorf("%w: invalid sell token mint", common.ErrValidation)
	}
	if _, err := solana.PublicKeyFromBase58(req.BuyToken); err != nil {
		return fmt.Errorf("%w: invalid buy token mint", common.ErrValidation)
	}
	if req.TakerAddress != "" {
		if _, err := solana.PublicKeyFromBase58(req.TakerAddress); err != nil {
			return fmt.Errorf("%w: invalid taker address", common.ErrValidation)
		}
	}
	return nil
}
