// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"fmt"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"
	"grc-track-go/pkg/hash"

	"gorm.io/gorm"
)

// UserInput 定义了管理员创建/更新用户时提交的字段。
// Department 只在角色为 director 时生效，其余角色强制清空。
type UserInput struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department *uint  `json:"department"`
	Status     string `json:"status"`
}

// Statistics 是统计接口的响应结构。
type Statistics struct {
	TotalUsers     int64 `json:"totalUsers"`
	DirectorCount  int64 `json:"directorCount"`
	TotalPending   int64 `json:"totalPending"`
	TotalCompleted int64 `json:"totalCompleted"`
}

// AdminService 接口定义了管理员专属的业务操作：账号管理与统计。
type AdminService interface {
	ListUsers() ([]model.User, error)
	CreateUser(in UserInput) (*model.User, error)
	UpdateUser(userID uint, in UserInput) (*model.User, error)
	DeleteUser(userID uint) error
	GetStatistics() (*Statistics, error)
}

// adminService 是 AdminService 接口的实现。
type adminService struct {
	userRepo        repository.UserRepository
	requirementRepo repository.RequirementRepository
	activityService ActivityService
}

// NewAdminService 创建一个新的 AdminService 实例。
func NewAdminService(userRepo repository.UserRepository, requirementRepo repository.RequirementRepository, activityService ActivityService) AdminService {
	return &adminService{
		userRepo:        userRepo,
		requirementRepo: requirementRepo,
		activityService: activityService,
	}
}

// ListUsers 返回所有用户。
func (s *adminService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

// directorDepartment 只保留 director 角色的部门绑定，其余角色一律为 NULL。
func directorDepartment(role string, department *uint) *uint {
	if role == model.RoleDirector {
		return department
	}
	return nil
}

// CreateUser 创建一个新用户账号。
func (s *adminService) CreateUser(in UserInput) (*model.User, error) {
	// 1. 检查用户名是否已存在
	_, err := s.userRepo.FindByUsername(in.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. 对密码进行哈希处理
	hashedPassword, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	newUser := &model.User{
		Username:   in.Username,
		Password:   hashedPassword,
		FullName:   in.FullName,
		Email:      in.Email,
		Role:       in.Role,
		Department: directorDepartment(in.Role, in.Department),
		Status:     in.Status,
	}
	if err := s.userRepo.Create(newUser); err != nil {
		return nil, err
	}

	s.activityService.Record(fmt.Sprintf("Added new user %s (%s)", newUser.Username, newUser.FullName), nil)
	return newUser, nil
}

// UpdateUser 整体更新一个用户账号。密码只在提交了新值时重新哈希。
func (s *adminService) UpdateUser(userID uint, in UserInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Username = in.Username
	user.FullName = in.FullName
	user.Email = in.Email
	user.Role = in.Role
	user.Department = directorDepartment(in.Role, in.Department)
	user.Status = in.Status
	if in.Password != "" {
		hashedPassword, err := hash.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.activityService.Record(fmt.Sprintf("Updated user %s", user.Username), nil)
	return user, nil
}

// DeleteUser 删除一个用户账号。内置管理员（ID 1）不允许删除。
func (s *adminService) DeleteUser(userID uint) error {
	if userID == 1 {
		return ErrProtectedUser
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}

	s.activityService.Record(fmt.Sprintf("Deleted user %s", user.Username), nil)
	return nil
}

// GetStatistics 返回按状态统计的需求数与按角色统计的用户数。
// 每次调用都重新计数，不做缓存。
func (s *adminService) GetStatistics() (*Statistics, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	directorCount, err := s.userRepo.CountByRole(model.RoleDirector)
	if err != nil {
		return nil, err
	}
	totalPending, err := s.requirementRepo.CountByStatus(model.StatusPending)
	if err != nil {
		return nil, err
	}
	totalCompleted, err := s.requirementRepo.CountByStatus(model.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalUsers:     totalUsers,
		DirectorCount:  directorCount,
		TotalPending:   totalPending,
		TotalCompleted: totalCompleted,
	}, nil
}
