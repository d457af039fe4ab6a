package main

import (
	"Reunite/internal/api/config"
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/logger"
	"Reunite/internal/pkg/mongo"
	"Reunite/internal/service"
	"context"
	"flag"
	"io"
	log "log/slog"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

func main() {
	file := flag.String("file", "new.json", "alumni JSON export")
	replace := flag.Bool("replace", true, "clear the collection before inserting")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg
	logger.InitLogger(cfg.Server.LogLevel)

	if err := run(cfg, *file, *replace); err != nil {
		log.Error("seed alumni failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, file string, replace bool) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "open %s", file)
	}
	defer func() { _ = f.Close() }()

	records, err := loadRecords(f)
	if err != nil {
		return errors.Wrapf(err, "decode %s", file)
	}

	db, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		return errors.Wrap(err, "connect mongo")
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	alumniSvc := service.NewAlumniService(mongo.NewAlumniRepo(db, cfg.Mongo.AlumniCollection))
	result, err := alumniSvc.Import(ctx, records, replace)
	if err != nil {
		return errors.Wrap(err, "import alumni")
	}
	log.Info("alumni data imported",
		"received", result.Received,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"replace", replace,
	)
	return nil
}

// loadRecords 读取导出的 JSON 数组
func loadRecords(r io.Reader) ([]dto.AlumniRecordDTO, error) {
	var records []dto.AlumniRecordDTO
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}
