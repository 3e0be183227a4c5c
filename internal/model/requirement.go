// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// 需求生命周期状态。
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Requirement 对应于数据库中的 'requirements' 表。
// 每条需求归属于唯一部门，只能通过生命周期管理的部分更新契约修改。
// 两个日期列以 "YYYY-MM-DD" 字符串形式收发，与客户端提交的格式一致。
type Requirement struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID  uint      `gorm:"not null;index" json:"departmentId"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	RequestDate   string    `gorm:"type:date;not null" json:"requestDate"`
	Status        string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Remarks       string    `gorm:"type:text" json:"remarks"`
	ReceivingDate *string   `gorm:"type:date" json:"receivingDate"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Files 是挂在该需求下的附件元数据，随需求级联删除。
	Files []File `gorm:"foreignKey:RequirementID;constraint:OnDelete:CASCADE" json:"files"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Requirement) TableName() string {
	return "requirements"
}
