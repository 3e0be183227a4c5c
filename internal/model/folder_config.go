// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// FolderConfig 对应于数据库中的 'folder_config' 表。
// 每个部门至多一条，记录管理员配置的附件落盘目录和共享链接。
type FolderConfig struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID uint      `gorm:"uniqueIndex;not null" json:"departmentId"`
	Path         string    `gorm:"type:varchar(1024)" json:"path"`
	SharedURL    string    `gorm:"type:varchar(1024)" json:"sharedUrl"`
	Configured   bool      `gorm:"not null;default:false" json:"configured"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (FolderConfig) TableName() string {
	return "folder_config"
}
