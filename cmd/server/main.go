// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grc-track-go/internal/config"
	"grc-track-go/internal/handler"
	"grc-track-go/internal/middleware"
	"grc-track-go/internal/repository"
	"grc-track-go/internal/seed"
	"grc-track-go/internal/service"
	"grc-track-go/pkg/database"
	"grc-track-go/pkg/kafka"
	"grc-track-go/pkg/log"
	"grc-track-go/pkg/storage"
	"grc-track-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库、Redis 和可选的外部依赖
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	kafka.InitProducer(cfg.Kafka)
	defer kafka.Close()

	// 4. 迁移表结构并写入初始数据
	if err := seed.Run(database.DB); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 5. 初始化 Repository
	departmentRepo := repository.NewDepartmentRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	requirementRepo := repository.NewRequirementRepository(database.DB)
	fileRepo := repository.NewFileRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	folderRepo := repository.NewFolderConfigRepository(database.DB)

	// 6. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpireHours)
	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo, jwtManager)
	departmentService := service.NewDepartmentService(departmentRepo)
	requirementService := service.NewRequirementService(departmentRepo, requirementRepo, activityService)
	fileService := service.NewFileService(departmentRepo, requirementRepo, fileRepo, folderRepo, activityService, cfg.Storage, cfg.MinIO)
	folderService := service.NewFolderService(folderRepo)
	adminService := service.NewAdminService(userRepo, requirementRepo, activityService)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 8. 注册路由
	api := r.Group("/api")
	{
		// 无需认证的路由 (公开访问)
		api.POST("/login", handler.NewAuthHandler(userService).Login)
		api.GET("/departments", handler.NewDepartmentHandler(departmentService).List)
		api.GET("/folder-config", handler.NewFolderHandler(folderService).GetAll)
		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"message":   "Server is running",
				"timestamp": time.Now(),
			})
		})

		// 需要认证的路由 (仅限登录用户访问)
		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware(jwtManager, userService))
		{
			authed.POST("/logout", handler.NewAuthHandler(userService).Logout)
			authed.GET("/departments/:deptId", handler.NewDepartmentHandler(departmentService).Get)
			authed.PUT("/departments/:deptId/requirements/:reqId", handler.NewRequirementHandler(requirementService).Update)

			files := handler.NewFileHandler(fileService)
			authed.POST("/departments/:deptId/requirements/:reqId/files", files.Upload)
			authed.DELETE("/departments/:deptId/requirements/:reqId/files/:fileId", files.Delete)
			authed.GET("/departments/:deptId/requirements/:reqId/files/:fileId/url", files.DownloadURL)

			authed.GET("/activities", handler.NewActivityHandler(activityService).List)
			authed.PUT("/folder-config/:deptId", handler.NewFolderHandler(folderService).Upsert)
		}

		// 管理员路由组，需要同时通过认证和管理员授权两个中间件
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(jwtManager, userService), middleware.AdminAuthMiddleware())
		{
			adminHandler := handler.NewAdminHandler(adminService)
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/statistics", adminHandler.Statistics)

			folderHandler := handler.NewFolderHandler(folderService)
			admin.POST("/admin/folder-config", folderHandler.BulkConfigure)
			admin.POST("/admin/test-file-save", folderHandler.TestFileSave)
		}
	}

	// 9. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
