// Package kafka 提供了向 Kafka 审计主题外发事件的功能。
package kafka

import (
	"context"
	"encoding/json"

	"grc-track-go/internal/config"
	"grc-track-go/pkg/events"
	"grc-track-go/pkg/log"

	"github.com/segmentio/kafka-go"
)

var producer *kafka.Writer

// InitProducer 初始化 Kafka 生产者。kafka.enabled 为 false 时不做任何事。
func InitProducer(cfg config.KafkaConfig) {
	if !cfg.Enabled {
		log.Info("Kafka 未启用，活动记录只写数据库")
		return
	}
	producer = &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Info("Kafka 生产者初始化成功")
}

// Enabled 报告审计事件外发是否可用。
func Enabled() bool {
	return producer != nil
}

// ProduceActivityEvent 发送一条活动事件到审计主题。
// 数据库中的活动表才是事实来源，这里失败只影响外部消费方。
func ProduceActivityEvent(event events.ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return producer.WriteMessages(context.Background(),
		kafka.Message{
			Value: payload,
		},
	)
}

// Close 关闭生产者连接。
func Close() {
	if producer != nil {
		_ = producer.Close()
	}
}
