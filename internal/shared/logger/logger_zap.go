// Package logger содержит общий логгер для server и CLI.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и методы для логирования HTTP-запросов и решений рассылки.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile — путь к файлу логов относительно рабочей директории.
var LogFile = filepath.Join("runtime", "logs", "stylist.log")

// Logger представляет обёртку над zap.Logger.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// New создаёт файловый zap-логгер.
//
// Логи записываются в LogFile с ротацией (MaxSize/MaxBackups/MaxAge) и сжатием архивов.
// level — debug|info|warn|error, неизвестное значение трактуется как info.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(level string) *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFile), 0755)

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   LogFile,
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // дней
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		ParseLevel(level),
	)

	return &Logger{Logger: zap.New(core, zap.AddCaller())}
}

// NewNop возвращает логгер, который ничего не пишет. Нужен в тестах.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel переводит строку уровня из конфига в zapcore.Level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// duration — длительность обработки запроса в миллисекундах.
func (l *Logger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	l.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// LogDispatch фиксирует решение рассылки по одному пользователю:
// outcome — sent|skipped|failed.
func (l *Logger) LogDispatch(email, timezone string, localHour, targetHour int, outcome string) {
	l.Info("dispatch decision",
		zap.String("email", email),
		zap.String("timezone", timezone),
		zap.Int("local_hour", localHour),
		zap.Int("target_hour", targetHour),
		zap.String("outcome", outcome),
	)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
