// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"grc-track-go/internal/model"

	"gorm.io/gorm"
)

// DepartmentRepository 接口定义了部门数据的持久化操作。
type DepartmentRepository interface {
	FindAll() ([]model.Department, error)
	FindAllWithRequirements() ([]model.Department, error)
	FindByID(id uint) (*model.Department, error)
	FindByIDWithRequirements(id uint) (*model.Department, error)
	Create(dept *model.Department) error
	Count() (int64, error)
}

// departmentRepository 是 DepartmentRepository 接口的 GORM 实现。
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository 创建一个新的 DepartmentRepository 实例。
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// FindAll 检索所有部门（不带需求）。
func (r *departmentRepository) FindAll() ([]model.Department, error) {
	var depts []model.Department
	err := r.db.Find(&depts).Error
	return depts, err
}

// FindAllWithRequirements 检索所有部门，并预加载每个部门的需求及附件元数据。
func (r *departmentRepository) FindAllWithRequirements() ([]model.Department, error) {
	var depts []model.Department
	err := r.db.Preload("Requirements.Files").Preload("Requirements").Find(&depts).Error
	return depts, err
}

// FindByID 根据 ID 查找一个部门。
func (r *departmentRepository) FindByID(id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.First(&dept, id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// FindByIDWithRequirements 根据 ID 查找一个部门，并预加载需求及附件元数据。
func (r *departmentRepository) FindByIDWithRequirements(id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.Preload("Requirements.Files").Preload("Requirements").First(&dept, id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// Create 在数据库中创建一个新的部门记录。
func (r *departmentRepository) Create(dept *model.Department) error {
	return r.db.Create(dept).Error
}

// Count 统计部门总数。
func (r *departmentRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Department{}).Count(&total).Error
	return total, err
}
