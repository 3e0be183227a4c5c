// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"grc-track-go/internal/model"

	"gorm.io/gorm"
)

// ActivityRepository 接口定义了活动记录的持久化操作。
// 活动表只追加，因此没有更新和删除方法。
type ActivityRepository interface {
	Create(activity *model.Activity) error
	FindRecent(limit int) ([]model.Activity, error)
	// FindRecentForDepartment 返回指定部门的活动与所有系统级活动的并集。
	FindRecentForDepartment(deptID uint, limit int) ([]model.Activity, error)
}

// activityRepository 是 ActivityRepository 接口的 GORM 实现。
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建一个新的 ActivityRepository 实例。
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create 追加一条活动记录。
func (r *activityRepository) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

// FindRecent 按时间倒序检索最近的活动记录。
func (r *activityRepository) FindRecent(limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

// FindRecentForDepartment 按时间倒序检索指定部门的活动及所有系统级活动。
func (r *activityRepository) FindRecentForDepartment(deptID uint, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Where("department_id = ? OR type = ?", deptID, model.ActivityTypeSystem).
		Order("timestamp DESC").Limit(limit).Find(&activities).Error
	return activities, err
}
