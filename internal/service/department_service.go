// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"

	"gorm.io/gorm"
)

// DepartmentService 接口定义了部门读取相关的业务操作。
type DepartmentService interface {
	// List 返回所有部门，嵌套各自的需求及附件元数据。
	List() ([]model.Department, error)
	// Get 返回单个部门，形状与 List 的元素一致。
	Get(deptID uint) (*model.Department, error)
}

// departmentService 是 DepartmentService 接口的实现。
type departmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService 创建一个新的 DepartmentService 实例。
func NewDepartmentService(departmentRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

// List 返回所有部门及其需求和附件元数据。
func (s *departmentService) List() ([]model.Department, error) {
	return s.departmentRepo.FindAllWithRequirements()
}

// Get 返回单个部门及其需求和附件元数据。
func (s *departmentService) Get(deptID uint) (*model.Department, error) {
	dept, err := s.departmentRepo.FindByIDWithRequirements(deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}
