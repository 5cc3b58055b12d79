package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"cv-autofill-go/internal/api/handler"
	"cv-autofill-go/internal/api/router"
	"cv-autofill-go/internal/config"
	appCoreLogger "cv-autofill-go/internal/logger"
	"cv-autofill-go/internal/parser"
	"cv-autofill-go/internal/processor"
)

var (
	version     = "1.0.0"          //nolint:gochecknoglobals
	serviceName = "cv-autofill-go" //nolint:gochecknoglobals
)

// @title CV Autofill API
// @version 1.0
// @description 简历理解服务：上传简历文件，返回结构化的档案数据
// @BasePath /api/v1
func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		appCoreLogger.Fatal().Err(err).Msg("加载配置失败")
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 提取后端：PDF走Eino解析器，DOCX走Tika服务器，TXT直通
	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
		parser.WithEinoTimeout(config.GetDuration(cfg.Pipeline.PDFTimeout, 30*time.Second)),
	)
	if err != nil {
		glog.Fatalf("创建Eino PDF提取器失败: %v", err)
	}
	glog.Info("Eino PDF提取器初始化成功")

	docxExtractor := parser.NewTikaDOCXExtractor(cfg.Tika.ServerURL,
		parser.WithTikaTimeout(time.Duration(cfg.Tika.Timeout)*time.Second),
	)
	glog.Info("Tika DOCX提取器初始化成功")

	textExtractor := parser.NewPlainTextExtractor()

	profileProcessor := processor.NewProfileProcessor(cfg)
	glog.Info("档案解析管道初始化成功")

	profileHandler := handler.NewProfileHandler(
		cfg,
		pdfExtractor,
		docxExtractor,
		textExtractor,
		profileProcessor,
	)
	glog.Info("ProfileHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, profileHandler)
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
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并把Hertz的glog接到同一个实例上
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	appCoreLogger.Logger = appCoreLogger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()
	zlog.Logger = appCoreLogger.Logger

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
