// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"
	"grc-track-go/pkg/token"

	"gorm.io/gorm"
)

// UpdateRequirementInput 定义了需求部分更新契约的请求体。
// 空字符串等同于未提交，对应字段保持原值。
type UpdateRequirementInput struct {
	Status        string `json:"status"`
	Remarks       string `json:"remarks"`
	ReceivingDate string `json:"receivingDate"`
}

// RequirementService 接口定义了需求生命周期相关的业务操作。
type RequirementService interface {
	// Update 按部分更新契约修改一条需求，返回携带附件元数据的最新状态。
	Update(claims *token.CustomClaims, deptID, reqID uint, in UpdateRequirementInput) (*model.Requirement, error)
}

// requirementService 是 RequirementService 接口的实现。
type requirementService struct {
	departmentRepo  repository.DepartmentRepository
	requirementRepo repository.RequirementRepository
	activityService ActivityService
}

// NewRequirementService 创建一个新的 RequirementService 实例。
func NewRequirementService(departmentRepo repository.DepartmentRepository, requirementRepo repository.RequirementRepository, activityService ActivityService) RequirementService {
	return &requirementService{
		departmentRepo:  departmentRepo,
		requirementRepo: requirementRepo,
		activityService: activityService,
	}
}

// Update 按部分更新契约修改一条需求。
// 前置校验顺序：部门存在 → 需求存在于该部门下 → 调用方部门权限。
// 只有提交且非空（去除首尾空白后）的字段会被应用，updatedAt 每次成功写入都会刷新。
// 状态发生变化时追加一条部门活动记录。
func (s *requirementService) Update(claims *token.CustomClaims, deptID, reqID uint, in UpdateRequirementInput) (*model.Requirement, error) {
	// 1. 部门存在性
	if _, err := s.departmentRepo.FindByID(deptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	// 2. 需求存在性（限定在该部门下）
	existing, err := s.requirementRepo.FindByIDAndDepartment(reqID, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}

	// 3. 部门权限
	if err := checkDepartmentScope(claims, deptID); err != nil {
		return nil, err
	}

	oldStatus := existing.Status

	status := strings.TrimSpace(in.Status)
	remarks := strings.TrimSpace(in.Remarks)
	receivingDate := strings.TrimSpace(in.ReceivingDate)

	// 只把提交且非空的字段写入更新集；updatedAt 无条件刷新
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if status != "" {
		fields["status"] = status
	}
	if remarks != "" {
		fields["remarks"] = remarks
	}
	if receivingDate != "" {
		fields["receiving_date"] = receivingDate
	}

	if err := s.requirementRepo.UpdateFields(reqID, deptID, fields); err != nil {
		return nil, err
	}

	// 状态发生变化时记录审计活动
	if status != "" && status != oldStatus {
		s.activityService.Record(fmt.Sprintf("Updated requirement #%d from %s to %s", reqID, oldStatus, status), &deptID)
	}

	return s.requirementRepo.FindWithFiles(reqID, deptID)
}
