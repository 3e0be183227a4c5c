// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// 活动类型。departmentId 为 NULL 当且仅当类型为 system。
const (
	ActivityTypeSystem     = "system"
	ActivityTypeDepartment = "department"
)

// Activity 对应于数据库中的 'activities' 表。
// 只追加，应用逻辑永远不会更新或删除已有行。
type Activity struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	DepartmentID *uint     `json:"departmentId"`
	Type         string    `gorm:"type:varchar(20);not null;default:department" json:"type"`
	Timestamp    time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Activity) TableName() string {
	return "activities"
}
