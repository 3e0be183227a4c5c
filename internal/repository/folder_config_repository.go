// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"grc-track-go/internal/model"

	"gorm.io/gorm"
)

// FolderConfigRepository 接口定义了部门目录配置的持久化操作。
type FolderConfigRepository interface {
	FindAll() ([]model.FolderConfig, error)
	FindByDepartment(deptID uint) (*model.FolderConfig, error)
	Create(cfg *model.FolderConfig) error
	// UpdateFields 按列名部分更新某部门的目录配置。
	UpdateFields(deptID uint, fields map[string]interface{}) error
}

// folderConfigRepository 是 FolderConfigRepository 接口的 GORM 实现。
type folderConfigRepository struct {
	db *gorm.DB
}

// NewFolderConfigRepository 创建一个新的 FolderConfigRepository 实例。
func NewFolderConfigRepository(db *gorm.DB) FolderConfigRepository {
	return &folderConfigRepository{db: db}
}

// FindAll 检索所有部门的目录配置。
func (r *folderConfigRepository) FindAll() ([]model.FolderConfig, error) {
	var configs []model.FolderConfig
	err := r.db.Find(&configs).Error
	return configs, err
}

// FindByDepartment 查找某个部门的目录配置。
func (r *folderConfigRepository) FindByDepartment(deptID uint) (*model.FolderConfig, error) {
	var cfg model.FolderConfig
	err := r.db.Where("department_id = ?", deptID).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Create 创建一条部门目录配置。
func (r *folderConfigRepository) Create(cfg *model.FolderConfig) error {
	return r.db.Create(cfg).Error
}

// UpdateFields 按列名部分更新某部门的目录配置。
func (r *folderConfigRepository) UpdateFields(deptID uint, fields map[string]interface{}) error {
	return r.db.Model(&model.FolderConfig{}).Where("department_id = ?", deptID).Updates(fields).Error
}
