package kafka

import (
	"Reunite/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理校友名录服务的 Kafka 消费者
type ConsumerManager struct {
	topic          string
	alumniConsumer sarama.ConsumerGroup
	alumniHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数，kafka.enable 为 false 时返回 nil
func NewConsumerManager(cfg *config.Config, importer AlumniImporter) (*ConsumerManager, error) {
	if !cfg.Kafka.Enable {
		return nil, nil
	}
	saramaCfg := newSaramaConfig(cfg.Kafka)

	alumniConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaAlumniConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:          cfg.KafkaAlumniConsumer.Topic,
		alumniConsumer: alumniConsumer,
		alumniHandler:  NewAlumniHandler(importer),
	}, nil
}

// Start 启动消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	if m == nil {
		<-ctx.Done()
		return nil
	}

	go func() {
		for err := range m.alumniConsumer.Errors() {
			log.Error("Error from alumni consumer", "err", err)
		}
	}()

	go func() {
		log.Info("Alumni import consumer started", "topic", m.topic)
		for {
			if err := m.alumniConsumer.Consume(ctx, []string{m.topic}, m.alumniHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.alumniConsumer.Close(); err != nil {
		log.Error("Failed to close alumni consumer", "err", err)
	}
	return nil
}
