// Package service 包含了应用的业务逻辑层。
package service

import "errors"

// 业务错误哨兵，handler 层据此映射 HTTP 状态码。
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccessDenied          = errors.New("access denied")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrRequirementNotFound   = errors.New("requirement not found")
	ErrFileNotFound          = errors.New("file not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("user already exists")
	ErrProtectedUser         = errors.New("cannot delete default admin user")
	ErrInvalidFilesPayload   = errors.New("invalid files data")
	ErrObjectStorageDisabled = errors.New("object storage not configured")
)
