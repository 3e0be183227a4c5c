// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// FileHandler 负责处理附件上传、删除和下载链接相关的 API 请求。
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler 创建一个新的 FileHandler 实例。
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadRequest 定义了附件上传 API 的请求体结构。
type UploadRequest struct {
	Files []service.FileInput `json:"files"`
}

// Upload 处理一批附件上传。
func (h *FileHandler) Upload(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}
	reqID, ok := uintParam(c, "reqId")
	if !ok {
		return
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Files == nil {
		log.Warnf("UploadFiles: invalid files payload for dept %d req %d", deptID, reqID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid files data"})
		return
	}

	log.Infof("UploadFiles: dept %d req %d, %d file(s) received", deptID, reqID, len(req.Files))

	uploaded, err := h.fileService.Upload(currentClaims(c), deptID, reqID, req.Files)
	if err != nil {
		log.Warnf("UploadFiles: dept %d req %d failed: %v", deptID, reqID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploaded)
}

// Delete 删除一条附件元数据。磁盘上的文件保留。
func (h *FileHandler) Delete(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}
	reqID, ok := uintParam(c, "reqId")
	if !ok {
		return
	}
	fileID := c.Param("fileId")

	if err := h.fileService.Delete(currentClaims(c), deptID, reqID, fileID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

// DownloadURL 为附件的对象存储镜像签发临时下载链接。
func (h *FileHandler) DownloadURL(c *gin.Context) {
	deptID, ok := uintParam(c, "deptId")
	if !ok {
		return
	}
	reqID, ok := uintParam(c, "reqId")
	if !ok {
		return
	}
	fileID := c.Param("fileId")

	url, err := h.fileService.PresignedURL(c.Request.Context(), currentClaims(c), deptID, reqID, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
