// Package service 包含了应用的业务逻辑层。
package service

import (
	"grc-track-go/internal/model"
	"grc-track-go/pkg/token"
)

// checkDepartmentScope 校验调用方对目标部门的访问权限。
// director 只能操作自己绑定的部门，admin 和普通部门账号不受限制。
func checkDepartmentScope(claims *token.CustomClaims, deptID uint) error {
	if claims.Role == model.RoleDirector {
		if claims.Department == nil || *claims.Department != deptID {
			return ErrAccessDenied
		}
	}
	return nil
}
