// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// 用户角色。
const (
	RoleAdmin    = "admin"
	RoleDirector = "director"
	RoleUser     = "user"
)

// 用户状态。
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User 对应于数据库中的 'users' 表。
// Department 仅在角色为 director 时有值，指向其负责的部门。
// Password 存储的是 bcrypt 哈希，永远不会被序列化到响应中。
type User struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password   string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName   string     `gorm:"type:varchar(255);not null" json:"fullName"`
	Email      string     `gorm:"type:varchar(255);not null" json:"email"`
	Role       string     `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Department *uint      `json:"department"`
	Status     string     `gorm:"type:varchar(20);not null;default:active" json:"status"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (User) TableName() string {
	return "users"
}
