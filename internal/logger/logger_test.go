package logger

import (
	"testing"

	"github.com/op/go-logging"
)

// 测试内容：验证日志级别可以按字符串设置，非法值回退为 INFO。
func TestInitLogger_Level(t *testing.T) {
	t.Cleanup(func() { InitLogger("info") })

	InitLogger("debug")
	if Level() != logging.DEBUG {
		t.Fatalf("期望 DEBUG，实际为 %v", Level())
	}

	InitLogger("not-a-level")
	if Level() != logging.INFO {
		t.Fatalf("期望非法级别回退到 INFO，实际为 %v", Level())
	}

	InitLogger("warning")
	if Level() != logging.WARNING {
		t.Fatalf("期望 WARNING，实际为 %v", Level())
	}
	Infof("should be filtered: %d", 1)
	Warning("visible")
}
