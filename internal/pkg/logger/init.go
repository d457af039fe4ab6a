package logger

import (
	"io"
	log "log/slog"
	"os"
	"strings"
)

// LogWriter gin 访问日志与 slog 共用的输出
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化默认 logger，level 为空时使用 info
func InitLogger(level string) {
	InitLoggerWithWriter(os.Stdout, level)
}

func InitLoggerWithWriter(w io.Writer, level string) {
	LogWriter = w
	h := log.NewJSONHandler(w, &log.HandlerOptions{Level: parseLevel(level)})
	log.SetDefault(log.New(&ContextHandler{h}))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
