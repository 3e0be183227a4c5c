// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"errors"
	"time"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"
	"grc-track-go/pkg/database"
	"grc-track-go/pkg/hash"
	"grc-track-go/pkg/log"
	"grc-track-go/pkg/token"

	"gorm.io/gorm"
)

// UserService 接口定义了认证相关的业务操作。
type UserService interface {
	// Login 校验凭证，刷新最近登录时间并签发 token。
	Login(username, password string) (tokenString string, user *model.User, err error)
	// Logout 将 token 加入黑名单直到其自然过期。
	Logout(tokenString string) error
	// IsTokenRevoked 检查 token 是否已被登出。
	IsTokenRevoked(ctx context.Context, tokenString string) (bool, error)
	// GetByID 根据 ID 获取用户，供认证中间件加载当前用户。
	GetByID(userID uint) (*model.User, error)
}

// userService 是 UserService 接口的实现。
type userService struct {
	userRepo   repository.UserRepository
	jwtManager *token.JWTManager
}

// NewUserService 创建一个新的 UserService 实例。
func NewUserService(userRepo repository.UserRepository, jwtManager *token.JWTManager) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login 处理登录的业务逻辑。
func (s *userService) Login(username, password string) (string, *model.User, error) {
	// 1. 查找用户
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	// 2. 验证密码
	if !hash.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	// 3. 刷新最近登录时间
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		// 登录时间只是展示信息，刷新失败不阻断登录
		log.Warnf("[UserService] 刷新用户 '%s' 的最近登录时间失败: %v", username, err)
	} else {
		user.LastLogin = &now
	}

	// 4. 签发携带身份、角色和部门的 token
	tokenString, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role, user.Department)
	if err != nil {
		return "", nil, err
	}

	return tokenString, user, nil
}

// Logout 处理登出逻辑，将 token 加入 Redis 黑名单。
// token 的剩余有效期将作为黑名单 key 的过期时间。
func (s *userService) Logout(tokenString string) error {
	claims, err := s.jwtManager.VerifyToken(tokenString)
	if err != nil {
		return err
	}
	expiration := time.Until(claims.ExpiresAt.Time)
	return database.RDB.Set(context.Background(), "blacklist:"+tokenString, "true", expiration).Err()
}

// IsTokenRevoked 检查 token 是否在黑名单中。
func (s *userService) IsTokenRevoked(ctx context.Context, tokenString string) (bool, error) {
	n, err := database.RDB.Exists(ctx, "blacklist:"+tokenString).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByID 根据用户 ID 获取用户信息。
func (s *userService) GetByID(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
