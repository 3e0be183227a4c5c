// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"grc-track-go/internal/service"
	"grc-track-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// AdminHandler 负责处理管理员专属的 API 请求：账号管理与统计。
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例。
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers 返回所有用户账号。
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		log.Error("ListUsers failed", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser 创建一个新用户账号。
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var in service.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	user, err := h.adminService.CreateUser(in)
	if err != nil {
		log.Warnf("CreateUser: %s failed: %v", in.Username, err)
		respondError(c, err)
		return
	}

	log.Infof("CreateUser: user %s created, id %d", user.Username, user.ID)
	c.JSON(http.StatusCreated, user)
}

// UpdateUser 整体更新一个用户账号。
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var in service.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	user, err := h.adminService.UpdateUser(userID, in)
	if err != nil {
		log.Warnf("UpdateUser: id %d failed: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser 删除一个用户账号。
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(userID); err != nil {
		log.Warnf("DeleteUser: id %d failed: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// Statistics 返回需求与用户的汇总计数。
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.adminService.GetStatistics()
	if err != nil {
		log.Error("GetStatistics failed", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
