// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// respondError 把业务错误哨兵映射为对应的 HTTP 状态码。
// 未识别的错误按 500 返回，错误信息原样透给客户端（与历史行为一致）。
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, service.ErrRequirementNotFound),
		errors.Is(err, service.ErrFileNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrObjectStorageDisabled):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrProtectedUser),
		errors.Is(err, service.ErrInvalidFilesPayload):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// uintParam 解析路径中的数字参数，失败时直接响应 400。
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// currentClaims 取出 AuthMiddleware 注入的 token claims。
func currentClaims(c *gin.Context) *token.CustomClaims {
	return c.MustGet("claims").(*token.CustomClaims)
}
