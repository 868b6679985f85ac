package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogWriter 供 gorm logger 使用的 Printf 适配
type LogWriter struct {
	zapcore.WriteSyncer
}

func (l *LogWriter) Printf(format string, args ...interface{}) {
	_, _ = l.WriteSyncer.Write([]byte(fmt.Sprintf(format, args...)))
	_, _ = l.WriteSyncer.Write([]byte("\n"))
	_ = l.WriteSyncer.Sync()
}

// GetWriter 未初始化时返回 nil
func GetWriter() *LogWriter {
	return logWriter
}
