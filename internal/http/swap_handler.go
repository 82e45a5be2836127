package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/http/httputil"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/history"
)

type SwapHandler struct {
	historySvc *history.Service
}

func NewSwapHandler(historySvc *history.Service) *SwapHandler {
	return &SwapHandler{historySvc: historySvc}
}

func (h *SwapHandler) Root() string {
	return "/swaps"
}

func (h *SwapHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("", h.logSwap)
	pub.GET("", h.listSwaps)
}

// LogSwapRequest records one executed swap for the history listing.
type LogSwapRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Chain         string `json:"chain" binding:"required" example:"ethereum"`
	TokenIn       string `json:"tokenIn" binding:"required"`
	TokenOut      string `json:"tokenOut" binding:"required"`
	AmountIn      string `json:"amountIn" binding:"required"`
	AmountOut     string `json:"amountOut" binding:"required"`
	FeeAmount     string `json:"feeAmount"`
	TxHash        string `json:"txHash"`
}

// logSwap godoc
// @Summary Record an executed swap
// @Tags swaps
// @Accept json
// @Produce json
// @Param request body LogSwapRequest true "Swap facts"
// @Success 200 {object} httputil.Response{data=domain.SwapRecord}
// @Failure 400 {object} httputil.Response
// @Router /swaps [post]
func (h *SwapHandler) logSwap(c *gin.Context) {
	var req LogSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	chain, ok := domain.ParseChain(req.Chain)
	if !ok {
		httputil.BadRequest(c, "unsupported chain: "+req.Chain)
		return
	}

	record := &domain.SwapRecord{
		WalletAddress: req.WalletAddress,
		Chain:         chain,
		TokenIn:       req.TokenIn,
		TokenOut:      req.TokenOut,
		AmountIn:      req.AmountIn,
		AmountOut:     req.AmountOut,
		FeeAmount:     req.FeeAmount,
		TxHash:        req.TxHash,
	}
	if err := h.historySvc.LogSwap(record); err != nil {
		if errors.Is(err, common.ErrValidation) {
			httputil.BadRequest(c, err.Error())
			return
		}
		httputil.InternalError(c, "failed to record swap")
		return
	}
	httputil.Success(c, record)
}

// listSwaps godoc
// @Summary List recent swaps
// @Tags swaps
// @Produce json
// @Param walletAddress query string false "Filter by wallet"
// @Success 200 {object} httputil.Response{data=[]domain.SwapRecord}
// @Router /swaps [get]
func (h *SwapHandler) listSwaps(c *gin.Context) {
	records, err := h.historySvc.ListSwaps(c.Query("walletAddress"))
	if err != nil {
		httputil.InternalError(c, "failed to list swaps")
		return
	}
	httputil.Success(c, records)
}
