package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/cors"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"resume-match-go/internal/analyzer"
	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	appconfig "resume-match-go/internal/config"
	appCoreLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
)

var (
	version     = "1.0.0"           //nolint:gochecknoglobals
	serviceName = "resume-match-go" //nolint:gochecknoglobals
)

func main() {
	// .env 优先于配置文件加载，环境变量覆盖依赖它
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		glog.Warnf("加载 .env 文件失败: %v", err)
	}

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := appconfig.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 链路追踪（可选）
	var tracerProvider *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tracerProvider, err = initTracerProvider(ctx, cfg)
		if err != nil {
			glog.Fatalf("初始化链路追踪失败: %v", err)
		}
		glog.Infof("链路追踪已启用，上报地址: %s", cfg.Tracing.Endpoint)
	}

	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
		parser.WithEinoLogger(log.New(os.Stderr, "[EinoPDFMain] ", log.LstdFlags)))
	if err != nil {
		glog.Fatalf("创建Eino PDF提取器失败: %v", err)
	}
	glog.Info("使用Eino PDF解析器")

	extractorLogger := log.New(appCoreLogger.Logger, "[DocumentExtractor] ", log.LstdFlags)
	documentExtractor := parser.NewDocumentExtractor(pdfExtractor, extractorLogger)
	glog.Info("文档提取器初始化成功")

	analyzerLogger := log.New(appCoreLogger.Logger, "[Analyzer] ", log.LstdFlags)
	matchAnalyzer, err := analyzer.NewAnalyzer(analyzer.WithAnalyzerLogger(analyzerLogger))
	if err != nil {
		glog.Fatalf("初始化匹配分析器失败: %v", err)
	}
	glog.Info("匹配分析器初始化成功")

	analyzeHandler := handler.NewAnalyzeHandler(cfg, documentExtractor, matchAnalyzer)
	glog.Info("AnalyzeHandler初始化成功")

	serverOptions := []config.Option{
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	}

	var tracerCfg *hertztracing.Config
	if cfg.Tracing.Enabled {
		tracer, tCfg := hertztracing.NewServerTracer()
		tracerCfg = tCfg
		serverOptions = append(serverOptions, tracer)
	}

	h := server.New(serverOptions...)
	if tracerCfg != nil {
		h.Use(hertztracing.ServerMiddleware(tracerCfg))
	}

	h.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: cfg.CORS.AllowMethods,
		AllowHeaders: cfg.CORS.AllowHeaders,
		MaxAge:       time.Duration(cfg.CORS.MaxAgeHours) * time.Hour,
	}))

	router.RegisterRoutes(h, cfg, analyzeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("服务器关闭失败: %v", err)
	}
	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			glog.Errorf("链路追踪关闭失败: %v", err)
		}
	}
	glog.Info("优雅退出完成")
}

// initLogger 按配置初始化日志系统，级别/格式/时间格式/调用位置全部来自 cfg.Logger
func initLogger(cfg *appconfig.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	// 设置一些全局的字段
	appCoreLogger.Logger = appCoreLogger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()

	// Hertz 框架日志走同一个 zerolog 实例
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	if cfg.Logger.Level == "debug" {
		glog.SetLevel(glog.LevelDebug)
	} else {
		glog.SetLevel(glog.LevelInfo)
	}
}

// initTracerProvider 构造 OTLP gRPC 上报的 TracerProvider 并设为全局
func initTracerProvider(ctx context.Context, cfg *appconfig.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Tracing.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Tracing.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}
