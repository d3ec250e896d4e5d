package logger

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// TestInitAppliesConfiguredLevel 配置的级别同时作用于包内实例和全局级别
func TestInitAppliesConfiguredLevel(t *testing.T) {
	Init(Config{Level: "warn", Format: "json"})

	assert.Equal(t, zerolog.WarnLevel, Logger.GetLevel())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.WarnLevel, zlog.Logger.GetLevel(), "zerolog 全局实例应被同步替换")
}

// TestInitInvalidLevelFallsBack 无法解析的级别回退到 info
func TestInitInvalidLevelFallsBack(t *testing.T) {
	Init(Config{Level: "verbose", Format: "json"})

	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestInitTimeFormat 配置的时间格式生效，缺省用 RFC3339
func TestInitTimeFormat(t *testing.T) {
	Init(Config{Level: "info", Format: "json", TimeFormat: "15:04:05"})
	assert.Equal(t, "15:04:05", zerolog.TimeFieldFormat)

	Init(Config{Level: "info", Format: "json"})
	assert.Equal(t, time.RFC3339, zerolog.TimeFieldFormat)
}
