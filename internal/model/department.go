// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// Department 对应于数据库中的 'departments' 表。
// 部门在初始化/迁移时建立，应用运行期间不再增删。
type Department struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Requirements 是该部门名下的全部需求，随部门级联删除。
	Requirements []Requirement `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"requirements"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Department) TableName() string {
	return "departments"
}
