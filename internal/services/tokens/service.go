package tokens

import (
	"context"
	"sort"
	"strings"
	"time"

	container "github.com/thehyperflames/dicontainer-go"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

const TOKEN_SERVICE = "token-service"

// Service resolves free-text queries into ranked token and pair lists.
type Service struct {
	container.BaseDIInstance
	logger *common.ServiceLogger

	upstream *config.UpstreamConfig
	client   *DexScreenerClient
}

func (svc *Service) ID() string {
	return TOKEN_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = common.NewServiceLogger(svc)
	svc.upstream = c.GetConfig(config.UPSTREAM_CONFIG_KEY).(*config.UpstreamConfig)
	svc.client = NewDexScreenerClient(svc.upstream)
	return nil
}

func (svc *Service) Start() error {
	return nil
}

func (svc *Service) Stop() error {
	return nil
}

// SearchTokens resolves a query into a ranked, deduplicated token list.
// Queries below the minimum length get the static popular defaults instead
// of a provider round trip. A provider failure returns an error, never an
// empty list, so callers can distinguish "failed" from "no matches".
func (svc *Service) SearchTokens(ctx context.Context, query string, chain domain.Chain, excludeAddress string) ([]domain.Token, error) {
	query = strings.TrimSpace(query)
	if len(query) < common.MinSearchQueryLength {
		defaults := PopularTokens(chain)
		if excludeAddress == "" {
			return defaults, nil
		}
		return Rank(defaults, "", chain, excludeAddress), nil
	}

	start := time.Now()
	pairs, err := svc.client.SearchPairs(ctx, query)
	metrics.SearchDuration.WithLabelValues("token").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchRequests.WithLabelValues("token", "error").Inc()
		svc.logger.Error(err, "token search failed", "SearchTokens")
		return nil, err
	}
	metrics.SearchRequests.WithLabelValues("token", "ok").Inc()

	return Rank(TokensFromPairs(pairs), query, chain, excludeAddress), nil
}

// SearchPairs resolves a query into trading pairs. Address-shaped queries go
// to the token-pairs endpoint, free text to the search endpoint; both paths
// apply the same chain filter and liquidity ordering.
func (svc *Service) SearchPairs(ctx context.Context, query string, chain domain.Chain) ([]domain.Pair, error) {
	query = strings.TrimSpace(query)
	if len(query) < common.MinSearchQueryLength {
		return nil, common.ErrValidation
	}

	start := time.Now()
	var (
		pairs []domain.Pair
		err   error
	)
	if IsProbablyAddress(query) {
		pairs, err = svc.client.TokenPairs(ctx, query)
	} else {
		pairs, err = svc.client.SearchPairs(ctx, query)
	}
	metrics.SearchDuration.WithLabelValues("pair").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchRequests.WithLabelValues("pair", "error").Inc()
		svc.logger.Error(err, "pair search failed", "SearchPairs")
		return nil, err
	}
	metrics.SearchRequests.WithLabelValues("pair", "ok").Inc()

	if chain != "" {
		filtered := pairs[:0]
		for _, p := range pairs {
			if p.Chain == chain {
				filtered = append(filtered, p)
			}
		}
		pairs = filtered
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].LiquidityUSD > pairs[j].LiquidityUSD
	})
	return pairs, nil
}
