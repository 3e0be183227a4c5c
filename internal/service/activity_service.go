// Package service 包含了应用的业务逻辑层。
package service

import (
	"time"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"
	"grc-track-go/pkg/events"
	"grc-track-go/pkg/kafka"
	"grc-track-go/pkg/log"
)

// 活动查询结果最多返回 100 条。
const activityFeedLimit = 100

// ActivityService 接口定义了审计活动相关的业务操作。
type ActivityService interface {
	// Record 追加一条活动记录。departmentID 为 nil 时记为系统级活动。
	// 记录失败只写日志，不打断调用方的主流程。
	Record(message string, departmentID *uint)
	// List 返回最近的活动，传入部门 ID 时返回该部门活动与系统活动的并集。
	List(departmentID *uint) ([]model.Activity, error)
}

// activityService 是 ActivityService 接口的实现。
type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService 创建一个新的 ActivityService 实例。
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Record 追加一条活动记录，并在启用 Kafka 时外发同一事件到审计主题。
func (s *activityService) Record(message string, departmentID *uint) {
	activityType := model.ActivityTypeDepartment
	if departmentID == nil {
		activityType = model.ActivityTypeSystem
	}

	activity := &model.Activity{
		Message:      message,
		DepartmentID: departmentID,
		Type:         activityType,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		// 活动记录是尽力而为的审计轨迹，失败不回传给业务调用方
		log.Errorf("[ActivityService] 写入活动记录失败, message: %q, error: %v", message, err)
		return
	}

	if kafka.Enabled() {
		event := events.ActivityEvent{
			Message:      activity.Message,
			DepartmentID: activity.DepartmentID,
			Type:         activity.Type,
			Timestamp:    time.Now(),
		}
		if err := kafka.ProduceActivityEvent(event); err != nil {
			log.Warnf("[ActivityService] 外发活动事件到 Kafka 失败: %v", err)
		}
	}
}

// List 返回最近的活动记录，按时间倒序。
func (s *activityService) List(departmentID *uint) ([]model.Activity, error) {
	if departmentID != nil {
		return s.activityRepo.FindRecentForDepartment(*departmentID, activityFeedLimit)
	}
	return s.activityRepo.FindRecent(activityFeedLimit)
}
