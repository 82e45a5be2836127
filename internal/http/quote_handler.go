package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/http/httputil"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/quoting"
)

type QuoteHandler struct {
	quoteSvc *quoting.Service
}

func NewQuoteHandler(quoteSvc *quoting.Service) *QuoteHandler {
	return &QuoteHandler{quoteSvc: quoteSvc}
}

func (h *QuoteHandler) Root() string {
	return "/quote"
}

func (h *QuoteHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("/evm", h.getEVMQuote)
	pub.POST("/solana", h.getSolanaQuote)
}

// EVMQuoteRequest is the request body for an EVM-family quote.
type EVMQuoteRequest struct {
	// Chain name: ethereum, bsc or polygon
	Chain string `json:"chain" binding:"required" example:"ethereum"`

	// Sell token contract address, or the pseudo-address
	// 0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee for the native coin
	SellToken string `json:"sellToken" binding:"required" example:"0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"`

	// Buy token contract address
	BuyToken string `json:"buyToken" binding:"required" example:"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"`

	// Sell amount in base units as a decimal integer string
	SellAmount string `json:"sellAmount" binding:"required" example:"1000000000000000000"`

	// Taker wallet address, optional
	TakerAddress string `json:"takerAddress" example:"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"`

	SellTokenSymbol string `json:"sellTokenSymbol"`
	BuyTokenSymbol  string `json:"buyTokenSymbol"`

	// Approximate USD value of the sell side, used for fee tier lookup
	SellAmountUSD float64 `json:"sellAmountUsd"`

	// Custom slippage percent; omit to use the automatic policy
	CustomSlippage *float64 `json:"customSlippage"`
}

// SolanaQuoteRequest is the request body for a Solana quote.
type SolanaQuoteRequest struct {
	// Sell token mint, base58
	SellToken string `json:"sellToken" binding:"required" example:"So11111111111111111111111111111111111111112"`

	// Buy token mint, base58
	BuyToken string `json:"buyToken" binding:"required" example:"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"`

	// Sell amount in base units as a decimal integer string
	SellAmount string `json:"sellAmount" binding:"required" example:"1000000000"`

	// Taker wallet public key, optional
	TakerAddress string `json:"takerAddress"`

	SellTokenSymbol string `json:"sellTokenSymbol"`
	BuyTokenSymbol  string `json:"buyTokenSymbol"`

	SellAmountUSD float64 `json:"sellAmountUsd"`

	CustomSlippage *float64 `json:"customSlippage"`
}

// getEVMQuote godoc
// @Summary Get an EVM swap quote
// @Description Fetches, normalizes and prices a swap quote on an EVM chain
// @Tags quote
// @Accept json
// @Produce json
// @Param request body EVMQuoteRequest true "Quote parameters"
// @Success 200 {object} httputil.Response{data=domain.Quote}
// @Failure 400 {object} httputil.Response
// @Failure 422 {object} httputil.Response
// @Failure 502 {object} httputil.Response
// @Router /quote/evm [post]
func (h *QuoteHandler) getEVMQuote(c *gin.Context) {
	var req EVMQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	chain, ok := domain.ParseChain(req.Chain)
	if !ok || !chain.IsEVM() {
		httputil.BadRequest(c, "unsupported chain: "+req.Chain)
		return
	}

	h.serveQuote(c, domain.QuoteRequest{
		Chain:           chain,
		SellToken:       req.SellToken,
		BuyToken:        req.BuyToken,
		SellAmount:      req.SellAmount,
		TakerAddress:    req.TakerAddress,
		SellTokenSymbol: req.SellTokenSymbol,
		BuyTokenSymbol:  req.BuyTokenSymbol,
		SellAmountUSD:   req.SellAmountUSD,
		CustomSlippage:  req.CustomSlippage,
	})
}

// getSolanaQuote godoc
// @Summary Get a Solana swap quote
// @Description Fetches, normalizes and prices a swap quote on Solana
// @Tags quote
// @Accept json
// @Produce json
// @Param request body SolanaQuoteRequest true "Quote parameters"
// @Success 200 {object} httputil.Response{data=domain.Quote}
// @Failure 400 {object} httputil.Response
// @Failure 422 {object} httputil.Response
// @Failure 502 {object} httputil.Response
// @Router /quote/solana [post]
func (h *QuoteHandler) getSolanaQuote(c *gin.Context) {
	var req SolanaQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	h.serveQuote(c, domain.QuoteRequest{
		Chain:           domain.ChainSolana,
		SellToken:       req.SellToken,
		BuyToken:        req.BuyToken,
		SellAmount:      req.SellAmount,
		TakerAddress:    req.TakerAddress,
		SellTokenSymbol: req.SellTokenSymbol,
		BuyTokenSymbol:  req.BuyTokenSymbol,
		SellAmountUSD:   req.SellAmountUSD,
		CustomSlippage:  req.CustomSlippage,
	})
}

func (h *QuoteHandler) serveQuote(c *gin.Context, req domain.QuoteRequest) {
	quote, err := h.quoteSvc.GetQuote(c.Request.Context(), req)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	httputil.Success(c, quote)
}

// writeQuoteError maps the pipeline error taxonomy onto HTTP statuses.
// Validation is the caller's fault, normalization means the pair cannot be
// quoted right now, and anything network-shaped is an upstream problem.
func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		httputil.WriteHttpError(c, common.HTTPErrorBadRequest(err.Error()))
	case errors.Is(err, common.ErrNormalization):
		httputil.WriteHttpError(c, common.HTTPErrorUnprocessable(common.ErrNormalization.Error()))
	case errors.Is(err, common.ErrNetwork):
		httputil.WriteHttpError(c, common.HTTPErrorBadGateway(common.ErrNetwork.Error()))
	default:
		httputil.WriteHttpError(c, common.HTTPErrorInternalError(""))
	}
}
