// Package events defines the structures of events published to Kafka.
package events

import "time"

// ActivityEvent 是活动记录写入数据库后，外发到审计主题的事件载荷。
// DepartmentID 为 nil 时表示系统级事件。
type ActivityEvent struct {
	Message      string    `json:"message"`
	DepartmentID *uint     `json:"department_id"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
}
