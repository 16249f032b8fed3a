package http

import (
	"github.com/gin-gonic/gin"

	"subflix/ddd/application/app"
	"subflix/pkg/config"
	"subflix/pkg/middleware"
)

// Router 路由配置
type Router struct {
	cfg         *config.Config
	settingsApp app.SettingsApp
	libraryApp  app.LibraryApp
	jobApp      app.JobApp
}

// NewRouter 创建路由配置
func NewRouter(cfg *config.Config, settingsApp app.SettingsApp, libraryApp app.LibraryApp, jobApp app.JobApp) *Router {
	return &Router{
		cfg:         cfg,
		settingsApp: settingsApp,
		libraryApp:  libraryApp,
		jobApp:      jobApp,
	}
}

// SetupMiddleware 设置中间件
func (r *Router) SetupMiddleware(engine *gin.Engine) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.RequestContextMiddleware())
}

// SetupRoutes 设置路由
func (r *Router) SetupRoutes(engine *gin.Engine) {
	settingsController := NewSettingsController(r.settingsApp)
	libraryController := NewLibraryController(r.libraryApp)
	jobController := NewJobController(r.jobApp)

	v1 := engine.Group("/api/v1")
	// JWT密钥未配置时中间件直接放行
	v1.Use(middleware.AuthMiddleware(r.cfg.JWT.Secret, r.cfg.JWT.Issuer))
	{
		v1.GET("/settings", settingsController.GetSettings)
		v1.PUT("/settings", settingsController.UpdateSettings)

		v1.POST("/scan", libraryController.ScanLibrary)

		videoFiles := v1.Group("/video-files")
		{
			videoFiles.GET("", libraryController.ListVideoFiles)
			videoFiles.DELETE("", libraryController.ClearVideoFiles)
			videoFiles.POST("/:video_file_id/process", jobController.CreateJob)
			videoFiles.POST("/:video_file_id/reset", libraryController.ResetVideoFile)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobController.ListJobs)
			jobs.DELETE("", jobController.ClearJobs)
			jobs.GET("/:job_id", jobController.GetJob)
		}
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "subflix",
			"version": "1.0.0",
		})
	})

	engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "SubFlix Subtitle Embedding Service API",
			"version": "1.0.0",
		})
	})
}
