// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// RequirementHandler 负责处理需求生命周期相关的 API 请求。
type RequirementHandler struct {
	requirementService service.RequirementService
}

// NewRequirementHandler 创建一个新的 RequirementHandler 实例。
func NewRequirementHandler(requirementService service.RequirementService) *RequirementHandler {
	return &RequirementHandler{requirementService: requirementService}
}

// Update 处理需求的部分更新：只有提交且非空的字段会被应用。
func (h *RequirementHandler) Update(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}
	reqID, ok := uintParam(c, "reqId")
	if !ok {
		return
	}

	var in service.UpdateRequirementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Warnf("UpdateRequirement: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updated, err := h.requirementService.Update(currentClaims(c), deptID, reqID, in)
	if err != nil {
		log.Warnf("UpdateRequirement: dept %d req %d failed: %v", deptID, reqID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
