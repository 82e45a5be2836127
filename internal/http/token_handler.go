package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/http/httputil"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/tokens"
)

type TokenHandler struct {
	tokenSvc *tokens.Service
}

func NewTokenHandler(tokenSvc *tokens.Service) *TokenHandler {
	return &TokenHandler{tokenSvc: tokenSvc}
}

func (h *TokenHandler) Root() string {
	return "/tokens"
}

func (h *TokenHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("/resolve", h.resolveTokens)
	pub.GET("/pairs", h.searchPairs)
}

// TokenSearchResponse wraps ranked results with a UI hint about the query.
type TokenSearchResponse struct {
	Results        []domain.Token `json:"results"`
	IsAddressQuery bool           `json:"isAddressQuery"`
}

// resolveTokens godoc
// @Summary Resolve a token search query
// @Description Ranked, deduplicated token search across all indexed providers
// @Tags tokens
// @Produce json
// @Param query query string false "Free text, symbol or address"
// @Param chain query string false "Chain filter: ethereum, bsc, polygon, solana"
// @Param excludeAddress query string false "Address to omit from results"
// @Success 200 {object} httputil.Response{data=TokenSearchResponse}
// @Failure 502 {object} httputil.Response
// @Router /tokens/resolve [get]
func (h *TokenHandler) resolveTokens(c *gin.Context) {
	query := c.Query("query")

	var chain domain.Chain
	if name := c.Query("chain"); name != "" {
		parsed, ok := domain.ParseChain(name)
		if !ok {
			httputil.BadRequest(c, "unsupported chain: "+name)
			return
		}
		chain = parsed
	}

	results, err := h.tokenSvc.SearchTokens(c.Request.Context(), query, chain, c.Query("excludeAddress"))
	if err != nil {
		httputil.ErrorWithCode(c, 502, "SEARCH_FAILED", "search failed")
		return
	}

	httputil.Success(c, TokenSearchResponse{
		Results:        results,
		IsAddressQuery: tokens.IsProbablyAddress(query),
	})
}

// searchPairs godoc
// @Summary Search trading pairs
// @Description Pair search by free text or token address, ordered by liquidity
// @Tags tokens
// @Produce json
// @Param query query string true "Free text or token address"
// @Param chain query string false "Chain filter"
// @Success 200 {object} httputil.Response{data=[]domain.Pair}
// @Failure 400 {object} httputil.Response
// @Failure 502 {object} httputil.Response
// @Router /tokens/pairs [get]
func (h *TokenHandler) searchPairs(c *gin.Context) {
	var chain domain.Chain
	if name := c.Query("chain"); name != "" {
		parsed, ok := domain.ParseChain(name)
		if !ok {
			httputil.BadRequest(c, "unsupported chain: "+name)
			return
		}
		chain = parsed
	}

	pairs, err := h.tokenSvc.SearchPairs(c.Request.Context(), c.Query("query"), chain)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			httputil.BadRequest(c, "query too short")
			return
		}
		httputil.ErrorWithCode(c, 502, "SEARCH_FAILED", "search failed")
		return
	}
	httputil.Success(c, pairs)
}
