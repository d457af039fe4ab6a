package kafka

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/logger"
	"bytes"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// AlumniImporter 由 AlumniService 实现
type AlumniImporter interface {
	Import(ctx context.Context, records []dto.AlumniRecordDTO, replace bool) (*dto.ImportResultDTO, error)
}

// AlumniHandler 消费校友名录导入消息，消息体为单条记录或记录数组
type AlumniHandler struct {
	importer AlumniImporter
}

func NewAlumniHandler(importer AlumniImporter) *AlumniHandler {
	return &AlumniHandler{importer: importer}
}

func (s *AlumniHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("alumni import consumer setup")
	return nil
}

func (s *AlumniHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("alumni import consumer cleanup")
	return nil
}

func (s *AlumniHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.handle)
}

func (s *AlumniHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = logger.WithTraceID(ctx, "kafka-alumni-"+uuid.NewString())

	records, err := decodeAlumniRecords(msg.Value)
	if err != nil {
		// 格式错误的消息重试也无法成功，直接跳过
		log.WarnContext(ctx, "skip malformed alumni message", "offset", msg.Offset, "err", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	result, err := s.importer.Import(ctx, records, false)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "alumni records imported",
		"received", result.Received,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
	return nil
}

func decodeAlumniRecords(value []byte) ([]dto.AlumniRecordDTO, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return nil, nil
	}
	if value[0] == '[' {
		var records []dto.AlumniRecordDTO
		if err := json.Unmarshal(value, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var record dto.AlumniRecordDTO
	if err := json.Unmarshal(value, &record); err != nil {
		return nil, err
	}
	return []dto.AlumniRecordDTO{record}, nil
}
