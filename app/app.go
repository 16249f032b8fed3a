package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	adapterhttp "subflix/ddd/adapter/http"
	application "subflix/ddd/application/app"
	"subflix/ddd/infrastructure/database/persistence"
	"subflix/ddd/infrastructure/executor"
	"subflix/ddd/infrastructure/progress"
	"subflix/ddd/infrastructure/queue"
	"subflix/ddd/infrastructure/storage"
	"subflix/ddd/infrastructure/worker"
	"subflix/pkg/config"
	"subflix/pkg/logger"
	"subflix/pkg/observability"
	"subflix/pkg/redisclient"
	"subflix/pkg/repository"
	"subflix/pkg/task"
)

func Run() {
	fmt.Println("[STARTUP] Starting subflix service...")

	cfgPath := resolveConfigPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	fmt.Printf("[STARTUP] Config file loaded: %s\n", cfgPath)

	logService := logger.NewLogger(cfg)
	logger.SetGlobalLogger(logService)
	defer logService.Close()

	logger.Infof("Subflix service starting version=%s", "1.0.0")

	observability.StartProfiling("subflix", cfg.Profiling.Enabled, cfg.Profiling.ServerAddress)

	// ffmpeg/ffprobe缺失直接在启动阶段失败
	if _, err := exec.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
		logger.Fatal(fmt.Sprintf("FFmpeg binary not found, please install or set ffmpeg.binary_path binary=%s error=%s", cfg.FFmpeg.BinaryPath, err.Error()))
	}
	if _, err := exec.LookPath(cfg.FFmpeg.ProbePath); err != nil {
		logger.Warnf("ffprobe not found, duration probing disabled binary=%s error=%s", cfg.FFmpeg.ProbePath, err.Error())
	}

	logger.Infof("Initializing database connection...")
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to initialize database error=%v", err))
	}
	defer db.Close()
	logger.Infof("Database connected")

	// Redis可选,不可用时进度只落库
	var redisClient *redisclient.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisclient.New(cfg.Redis)
		if err != nil {
			logger.Warnf("Redis unavailable, progress served from database only error=%v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Infof("Redis connected addr=%s", cfg.Redis.GetRedisAddr())
		}
	}

	// 仓储
	videoRepo := persistence.NewVideoFileRepository(db.Self)
	jobRepo := persistence.NewProcessingJobRepository(db.Self)
	settingsRepo := persistence.NewSettingsRepository(db.Self)

	// 队列与执行器
	jobQueue := queue.NewMemoryJobQueue(cfg.Worker.QueueCapacity)
	defer jobQueue.Close()
	embedder := executor.NewFFmpegEmbedder(&cfg.FFmpeg)

	progressSink := progress.NewDBSink(jobRepo)
	if redisClient != nil {
		progressSink = progress.NewMultiSink(progressSink, progress.NewRedisSink(redisClient))
	}

	uploader := storage.NewObjectUploader(settingsRepo)

	// 后台任务
	embedWorker := worker.NewEmbedWorker(jobQueue, jobRepo, videoRepo, embedder, progressSink, uploader, cfg.Worker.Concurrency)
	taskManager := task.NewManager()
	taskManager.Register(embedWorker)
	if err := taskManager.StartAll(context.Background()); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to start background tasks error=%v", err))
	}

	// 应用服务
	settingsApp := application.NewSettingsApp(settingsRepo)
	libraryApp := application.NewLibraryApp(videoRepo, settingsRepo)
	jobApp := application.NewJobApp(jobRepo, videoRepo, settingsRepo, jobQueue, redisClient)

	// HTTP
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Logger())

	router := adapterhttp.NewRouter(cfg, settingsApp, libraryApp, jobApp)
	router.SetupMiddleware(engine)
	router.SetupRoutes(engine)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(fmt.Sprintf("Failed to start HTTP server error=%v", err))
		}
	}()
	logger.Infof("HTTP server started addr=%s api_url=http://%s/api/v1", addr, addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Received shutdown signal, shutting down server...")

	// 先停工作器:被中断的转封装任务会以失败落库
	taskManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownGracePeriod)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to close error=%v", err)
	}

	logger.Infof("Server exited safely")
}

// resolveConfigPath 根据环境选择配置文件，支持CONFIG_PATH覆盖、CONFIG_ENV区分环境
func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	env := strings.ToLower(strings.TrimSpace(os.Getenv("CONFIG_ENV")))
	if env == "" {
		env = "dev"
	}

	switch env {
	case "prod", "production":
		return "configs/config_prod.yaml"
	case "dev", "development":
		return "configs/config.dev.yaml"
	default:
		return fmt.Sprintf("configs/config.%s.yaml", env)
	}
}
