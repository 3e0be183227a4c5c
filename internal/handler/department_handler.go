// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler 负责处理部门读取相关的 API 请求。
type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler 创建一个新的 DepartmentHandler 实例。
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// List 返回所有部门，嵌套需求与附件元数据。此接口历史上不要求认证。
func (h *DepartmentHandler) List(c *gin.Context) {
	depts, err := h.departmentService.List()
	if err != nil {
		log.Error("List departments failed", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// Get 返回单个部门，形状与 List 的元素一致。
func (h *DepartmentHandler) Get(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}

	dept, err := h.departmentService.Get(deptID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dept)
}
