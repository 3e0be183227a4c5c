// Package seed 负责数据库结构迁移与初始数据写入。
package seed

import (
	"errors"

	"grc-track-go/internal/model"
	"grc-track-go/pkg/hash"
	"grc-track-go/pkg/log"

	"gorm.io/gorm"
)

// 内置管理员与默认部门，与历史部署保持一致。
const (
	defaultAdminUsername = "admin@kpmg.com"
	defaultAdminPassword = "Admin123"
	defaultAdminFullName = "System Administrator"

	defaultDepartmentName        = "Corporate IT"
	defaultDepartmentDescription = "Corporate IT Division"
)

// Run 执行表结构迁移并写入初始数据，可重复执行。
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Requirement{},
		&model.File{},
		&model.Activity{},
		&model.FolderConfig{},
	); err != nil {
		return err
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedDefaultDepartment(db)
}

// seedAdminUser 在内置管理员不存在时创建它。
func seedAdminUser(db *gorm.DB) error {
	var existing model.User
	err := db.Where("username = ?", defaultAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := hash.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := model.User{
		Username: defaultAdminUsername,
		Password: hashedPassword,
		FullName: defaultAdminFullName,
		Email:    defaultAdminUsername,
		Role:     model.RoleAdmin,
		Status:   model.UserStatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Infof("[Seed] 内置管理员 '%s' 已创建", defaultAdminUsername)
	return nil
}

// seedDefaultDepartment 在没有任何部门时创建默认部门。
func seedDefaultDepartment(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dept := model.Department{
		Name:        defaultDepartmentName,
		Description: defaultDepartmentDescription,
	}
	if err := db.Create(&dept).Error; err != nil {
		return err
	}
	log.Infof("[Seed] 默认部门 '%s' 已创建", defaultDepartmentName)
	return nil
}
