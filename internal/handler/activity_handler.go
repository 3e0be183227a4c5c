// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"
	"strconv"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 负责处理活动记录查询相关的 API 请求。
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler 创建一个新的 ActivityHandler 实例。
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List 返回最近的活动记录，可按部门过滤。
// 带部门过滤时返回该部门活动与系统级活动的并集。
func (h *ActivityHandler) List(c *gin.Context) {
	var departmentID *uint
	if raw := c.Query("departmentId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departmentId"})
			return
		}
		id := uint(v)
		departmentID = &id
	}

	activities, err := h.activityService.List(departmentID)
	if err != nil {
		log.Error("List activities failed", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}
