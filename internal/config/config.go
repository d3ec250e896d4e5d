package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-match-go/internal/constants"
)

// Config 应用程序配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Upload   UploadConfig   `yaml:"upload"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logger   LoggerConfig   `yaml:"logger"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Address   string `yaml:"address"`    // 例如 ":8080" or "0.0.0.0:8080"
	StaticDir string `yaml:"static_dir"` // 前端构建产物目录，空则不提供静态文件
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
	AllowMethods []string `yaml:"allow_methods"`
	AllowHeaders []string `yaml:"allow_headers"`
	MaxAgeHours  int      `yaml:"max_age_hours"`
}

// UploadConfig 上传限制配置
type UploadConfig struct {
	MaxFileSizeMB int `yaml:"max_file_size_mb"` // 上传文档大小上限(MB)
}

// AnalyzerConfig 分析器限制配置
type AnalyzerConfig struct {
	// MaxInputBytes 单篇文本进入分析流程的长度上限(字节)，
	// 超出直接拒绝而不是截断
	MaxInputBytes int `yaml:"max_input_bytes"`
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`     // OTLP gRPC 接收端地址，例如 "localhost:4317"
	SampleRatio float64 `yaml:"sample_ratio"` // 采样比例 [0,1]
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// LoadConfig 从文件加载配置。
// 未指定路径时在常见位置查找；测试环境下找不到文件则返回默认配置而不报错。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"../../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-match", "config.yaml"),
		}

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "config.yaml"),
				filepath.Join(execDir, "..", "config.yaml"),
			)
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			if inTestEnv() {
				return createDefaultConfig(), nil
			}
			configPath = "config.yaml"
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if inTestEnv() {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 环境变量覆盖
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		config.Server.Address = addr
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		config.Tracing.Endpoint = endpoint
	}

	applyDefaults(&config)
	return &config, nil
}

// inTestEnv 检测是否在 go test 进程中运行
func inTestEnv() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}

func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Upload.MaxFileSizeMB == 0 {
		config.Upload.MaxFileSizeMB = constants.DefaultMaxUploadMB
	}
	if config.Analyzer.MaxInputBytes == 0 {
		config.Analyzer.MaxInputBytes = constants.DefaultMaxInputBytes
	}
	if config.Tracing.Endpoint == "" {
		config.Tracing.Endpoint = "localhost:4317"
	}
	if config.Tracing.SampleRatio == 0 {
		config.Tracing.SampleRatio = 1.0
	}
	if len(config.CORS.AllowOrigins) == 0 {
		config.CORS.AllowOrigins = []string{"*"}
	}
	if len(config.CORS.AllowMethods) == 0 {
		config.CORS.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(config.CORS.AllowHeaders) == 0 {
		config.CORS.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	}
	if config.CORS.MaxAgeHours == 0 {
		config.CORS.MaxAgeHours = 12
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
}

// 默认配置，用于测试环境
func createDefaultConfig() *Config {
	config := &Config{}

	config.Logger.Level = "info"
	config.Logger.Format = "pretty"
	config.Logger.TimeFormat = "2006-01-02 15:04:05"
	config.Logger.ReportCaller = true

	applyDefaults(config)
	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	data, err := yaml.Marshal(createDefaultConfig())
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}
	return nil
}
