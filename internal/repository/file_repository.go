// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"grc-track-go/internal/model"

	"gorm.io/gorm"
)

// FileRepository 接口定义了附件元数据的持久化操作。
// 文件内容本身落盘存储，这里只管理 'files' 表中的行。
type FileRepository interface {
	Create(file *model.File) error
	FindByRequirement(reqID uint) ([]model.File, error)
	FindByID(fileID string, reqID, deptID uint) (*model.File, error)
	Delete(fileID string, reqID, deptID uint) error
}

// fileRepository 是 FileRepository 接口的 GORM 实现。
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository 创建一个新的 FileRepository 实例。
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create 在数据库中插入一条附件元数据记录。
func (r *fileRepository) Create(file *model.File) error {
	return r.db.Create(file).Error
}

// FindByRequirement 检索一条需求名下的全部附件元数据。
func (r *fileRepository) FindByRequirement(reqID uint) ([]model.File, error) {
	var files []model.File
	err := r.db.Where("requirement_id = ?", reqID).Find(&files).Error
	return files, err
}

// FindByID 在指定需求和部门范围内查找一条附件记录。
func (r *fileRepository) FindByID(fileID string, reqID, deptID uint) (*model.File, error) {
	var file model.File
	err := r.db.Where("id = ? AND requirement_id = ? AND department_id = ?", fileID, reqID, deptID).First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Delete 删除一条附件元数据记录。磁盘上的文件不在此处理。
func (r *fileRepository) Delete(fileID string, reqID, deptID uint) error {
	return r.db.Where("id = ? AND requirement_id = ? AND department_id = ?", fileID, reqID, deptID).
		Delete(&model.File{}).Error
}
