package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger 统一日志接口
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Fatal(format string, args ...interface{})

	// WithField 设置额外字段
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger
}

// Config 日志配置
type Config struct {
	// 日志级别
	Level string
	// 服务名称
	ServiceName string
	// 是否使用JSON格式
	JSONFormat bool
}

// logrusLogger logrus实现的日志器
type logrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// New 创建日志器
func New(cfg Config) Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSONFormat {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	fields := logrus.Fields{}
	if cfg.ServiceName != "" {
		fields["service"] = cfg.ServiceName
	}

	return &logrusLogger{
		logger: l,
		fields: fields,
	}
}

func (l *logrusLogger) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *logrusLogger) Debug(format string, args ...interface{}) {
	l.entry().Debugf(format, args...)
}

func (l *logrusLogger) Info(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

func (l *logrusLogger) Warn(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l *logrusLogger) Error(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

func (l *logrusLogger) Fatal(format string, args ...interface{}) {
	l.entry().Fatalf(format, args...)
}

func (l *logrusLogger) withFields(fields logrus.Fields) Logger {
	merged := logrus.Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &logrusLogger{logger: l.logger, fields: merged}
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return l.withFields(logrus.Fields{key: value})
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) Logger {
	return l.withFields(logrus.Fields(fields))
}

func (l *logrusLogger) WithError(err error) Logger {
	return l.withFields(logrus.Fields{"error": err.Error()})
}
