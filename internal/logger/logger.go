// Package logger 封装 op/go-logging，提供全局分级日志。
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

const (
	moduleName = "os-blog"
	timeFormat = "2006/01/02 15:04:05"
)

var (
	mu      sync.RWMutex
	logger  *logging.Logger
	leveled logging.LeveledBackend
)

func init() {
	InitLogger("info")
}

// InitLogger 按给定级别初始化控制台日志。无法识别的级别按 info 处理。
func InitLogger(level string) {
	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:`+timeFormat+`} %{level:.4s} - %{message}`,
	))
	lb := logging.AddModuleLevel(formatted)
	lb.SetLevel(lvl, moduleName)

	l := logging.MustGetLogger(moduleName)
	l.SetBackend(lb)

	mu.Lock()
	logger = l
	leveled = lb
	mu.Unlock()
}

// Level 返回当前生效的日志级别。
func Level() logging.Level {
	mu.RLock()
	defer mu.RUnlock()
	return leveled.GetLevel(moduleName)
}

func get() *logging.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(args ...any) { get().Debug(args...) }

func Debugf(format string, args ...any) { get().Debugf(format, args...) }

func Info(args ...any) { get().Info(args...) }

func Infof(format string, args ...any) { get().Infof(format, args...) }

func Warning(args ...any) { get().Warning(args...) }

func Warningf(format string, args ...any) { get().Warningf(format, args...) }

func Error(args ...any) { get().Error(args...) }

func Errorf(format string, args ...any) { get().Errorf(format, args...) }

// Fatalf 记录错误并退出进程。
func Fatalf(format string, args ...any) { get().Fatalf(format, args...) }
