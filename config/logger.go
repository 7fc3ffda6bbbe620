package config

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역 로거다.
// InitLogger 가 호출되지 않더라도 기본 info 레벨로 동작한다.
var Logger = NewLogger("info")

// InitLogger 는 주어진 레벨로 전역 로거를 다시 만든다.
// 값이 비어 있거나 지원하지 않는 경우 info 를 사용한다.
func InitLogger(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Logger = NewLogger(level)
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 JSON 로거를 생성한다.
func NewLogger(level string) *slog.Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
			slog.FieldKeyData,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

// WithService 는 service_name 필드를 붙인 레코드를 반환한다.
// SERVICE_NAME 환경변수가 있으면 그것을 우선한다.
func WithService(name string) *slog.Record {
	if sn := os.Getenv("SERVICE_NAME"); sn != "" {
		name = sn
	}
	return Logger.WithFields(slog.M{"service_name": name})
}
