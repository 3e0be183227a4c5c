// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// FolderHandler 负责处理部门附件目录配置相关的 API 请求。
type FolderHandler struct {
	folderService service.FolderService
}

// NewFolderHandler 创建一个新的 FolderHandler 实例。
func NewFolderHandler(folderService service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// GetAll 返回按部门 ID 组织的全部目录配置。
func (h *FolderHandler) GetAll(c *gin.Context) {
	configs, err := h.folderService.GetAll()
	if err != nil {
		log.Error("GetFolderConfig failed", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// Upsert 创建或更新某部门的目录配置。
func (h *FolderHandler) Upsert(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}

	var in service.FolderConfigInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	cfg, err := h.folderService.Upsert(deptID, in)
	if err != nil {
		log.Warnf("UpsertFolderConfig: dept %d failed: %v", deptID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// BulkConfigureRequest 定义了批量目录配置的请求体。
type BulkConfigureRequest struct {
	Folders map[uint]string `json:"folders" binding:"required"`
}

// BulkConfigure 批量写入部门目录映射（管理员）。
func (h *FolderHandler) BulkConfigure(c *gin.Context) {
	var req BulkConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folders data"})
		return
	}

	configured, err := h.folderService.BulkConfigure(req.Folders)
	if err != nil {
		log.Error("BulkConfigure failed", err)
		respondError(c, err)
		return
	}

	log.Infof("BulkConfigure: %d folder(s) configured", configured)
	c.JSON(http.StatusOK, gin.H{"success": true, "configured": configured})
}

// TestFileSaveRequest 定义了写盘探测接口的请求体。
type TestFileSaveRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

// TestFileSave 向指定路径写入探测文件，验证配置的目录可写（管理员）。
func (h *FolderHandler) TestFileSave(c *gin.Context) {
	var req TestFileSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is required"})
		return
	}

	result, err := h.folderService.TestFileSave(req.Path, req.Content)
	if err != nil {
		log.Warnf("TestFileSave: write to %s failed: %v", req.Path, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
