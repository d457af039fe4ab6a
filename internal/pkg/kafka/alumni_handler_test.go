package kafka

import (
	"Reunite/internal/api/dto"
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
)

type stubImporter struct {
	records []dto.AlumniRecordDTO
	err     error
}

func (s *stubImporter) Import(_ context.Context, records []dto.AlumniRecordDTO, _ bool) (*dto.ImportResultDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.records = append(s.records, records...)
	return &dto.ImportResultDTO{Received: len(records), Inserted: len(records)}, nil
}

func TestDecodeAlumniRecords(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"array", `[{"Name":"A","College":"MIT","Branch":"CS"},{"Name":"B","College":"MIT","Branch":"EE"}]`, 2, false},
		{"single", ` {"Name":"A","College":"MIT","Branch":"CS"}`, 1, false},
		{"empty", "  ", 0, false},
		{"malformed", `{"Name":`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAlumniRecords([]byte(tt.value))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAlumniHandlerHandle(t *testing.T) {
	importer := &stubImporter{}
	h := NewAlumniHandler(importer)
	ctx := context.Background()

	msg := &sarama.ConsumerMessage{Value: []byte(`{"Name":"A","College":"MIT","Branch":"CS","Year":2020}`)}
	if err := h.handle(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(importer.records) != 1 || importer.records[0].Year != 2020 {
		t.Fatalf("records = %+v", importer.records)
	}

	if err := h.handle(ctx, &sarama.ConsumerMessage{Value: []byte("garbage")}); err != nil {
		t.Fatalf("malformed message should be skipped, got %v", err)
	}

	importer.err = errors.New("mongo down")
	if err := h.handle(ctx, msg); err == nil {
		t.Fatal("import error should be returned for retry")
	}
}
