// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// File 对应于数据库中的 'files' 表，记录上传附件的元数据。
// ID 是形如 file_<毫秒时间戳>_<随机串> 的不透明标识。
// Data 列为历史遗留，规范路径下始终写空，文件内容只落盘。
type File struct {
	ID            string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	RequirementID uint      `gorm:"not null;index" json:"requirementId"`
	DepartmentID  uint      `gorm:"not null;index" json:"departmentId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Type          string    `gorm:"type:varchar(255)" json:"type"`
	Size          int64     `json:"size"`
	Data          []byte    `gorm:"type:mediumblob" json:"-"`
	Path          string    `gorm:"type:varchar(1024)" json:"-"`
	Uploaded      time.Time `gorm:"autoCreateTime" json:"uploaded"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (File) TableName() string {
	return "files"
}
