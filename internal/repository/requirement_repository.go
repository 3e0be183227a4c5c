// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"grc-track-go/internal/model"

	"gorm.io/gorm"
)

// RequirementRepository 接口定义了需求数据的持久化操作。
type RequirementRepository interface {
	FindByIDAndDepartment(reqID, deptID uint) (*model.Requirement, error)
	FindWithFiles(reqID, deptID uint) (*model.Requirement, error)
	Create(req *model.Requirement) error
	// UpdateFields 按列名部分更新一条需求，fields 由调用方按契约裁剪。
	UpdateFields(reqID, deptID uint, fields map[string]interface{}) error
	CountByStatus(status string) (int64, error)
}

// requirementRepository 是 RequirementRepository 接口的 GORM 实现。
type requirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository 创建一个新的 RequirementRepository 实例。
func NewRequirementRepository(db *gorm.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

// FindByIDAndDepartment 在指定部门下查找一条需求。
func (r *requirementRepository) FindByIDAndDepartment(reqID, deptID uint) (*model.Requirement, error) {
	var req model.Requirement
	err := r.db.Where("id = ? AND department_id = ?", reqID, deptID).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindWithFiles 在指定部门下查找一条需求，并预加载附件元数据。
func (r *requirementRepository) FindWithFiles(reqID, deptID uint) (*model.Requirement, error) {
	var req model.Requirement
	err := r.db.Preload("Files").Where("id = ? AND department_id = ?", reqID, deptID).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create 在数据库中创建一条新的需求记录。
func (r *requirementRepository) Create(req *model.Requirement) error {
	return r.db.Create(req).Error
}

// UpdateFields 按列名部分更新一条需求。
func (r *requirementRepository) UpdateFields(reqID, deptID uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Requirement{}).
		Where("id = ? AND department_id = ?", reqID, deptID).
		Updates(fields).Error
}

// CountByStatus 统计处于指定状态的需求数量。
func (r *requirementRepository) CountByStatus(status string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Requirement{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
