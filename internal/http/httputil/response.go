package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, err string) {
	c.JSON(status, Response{
		Success: false,
		Error:   err,
	})
}

// ErrorWithCode attaches a machine-readable code so the UI can distinguish
// "search failed" from "no matches found" and similar states.
func ErrorWithCode(c *gin.Context, status int, code, err string) {
	c.JSON(status, Response{
		Success: false,
		Error:   err,
		Code:    code,
	})
}

// WriteHttpError renders a structured HttpError with its status and code.
func WriteHttpError(c *gin.Context, err *common.HttpError) {
	ErrorWithCode(c, err.StatusCode, err.Code, err.Message)
}

func BadRequest(c *gin.Context, err string) {
	Error(c, http.StatusBadRequest, err)
}

func InternalError(c *gin.Context, err string) {
	Error(c, http.StatusInternalServerError, err)
}

func NotFound(c *gin.Context, err string) {
	Error(c, http.StatusNotFound, err)
}

func BadGateway(c *gin.Context, err string) {
	Error(c, http.StatusBadGateway, err)
}
