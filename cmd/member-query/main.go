package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"member-query/internal/api/router"
	"member-query/internal/pkg/config"
	"member-query/internal/pkg/database"
	"member-query/internal/pkg/jwt"
	"member-query/internal/pkg/logger"
	"member-query/internal/repository"
	"member-query/internal/scheduler"
	"member-query/internal/seed"
	"member-query/internal/service"

	_ "member-query/docs" // Swagger docs
)

// @title Member Query API
// @version 1.0
// @description 会员与团队动态查询服务
// @description 提供条件搜索、分页、排序及批量操作接口

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
	token      = flag.String("token", "", "为指定调用方签发批量操作Token后退出 (例如: -token=ops)")
)

const (
	appVersion = "1.0.0"
	appName    = "member-query"
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 显示版本信息
	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config logger
	var cfg *config.Config
	{
		// 优先级: 命令行参数 > 环境变量 > 默认路径
		configPath := getConfigPath()

		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			fmt.Println("\n使用方式:")
			fmt.Println("  1. 命令行参数指定:")
			fmt.Println("     ./member-query -config=configs/config.yaml")
			fmt.Println("  2. 环境变量指定:")
			fmt.Println("     export CONFIG_FILE=configs/config.yaml")
			fmt.Println("     ./member-query")
			fmt.Println("  3. 使用默认配置:")
			fmt.Println("     ./member-query  (将使用 configs/config.yaml)")
			os.Exit(1)
		}
		cfg = c

		if *token != "" {
			signed, err := jwt.GenerateAccessToken(&cfg.Auth.JWT, *token)
			if err != nil {
				fmt.Printf("签发Token失败: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(signed)
			os.Exit(0)
		}

		// 初始化日志
		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s of %s", configPath, getConfigSource()))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()

	logger.Info(fmt.Sprintf("数据库连接成功 %s %s:%v", cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port),
		zap.String("database", cfg.Database.Database))

	db := database.GetDB()
	memberRepo := repository.NewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberService := service.NewMemberService(memberRepo, teamRepo, logger.Log)
	teamService := service.NewTeamService(teamRepo, logger.Log)

	// 写入初始数据
	if cfg.Seed.Enabled && cfg.Seed.File != "" {
		seeder := seed.NewSeeder(teamRepo, memberRepo, logger.Log)
		if _, err := seeder.ApplyFile(context.Background(), cfg.Seed.File); err != nil {
			logger.Warn("写入初始数据失败", zap.String("file", cfg.Seed.File), zap.Error(err))
		}
	}

	// 初始化并启动定时任务调度器
	var taskScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		taskScheduler = scheduler.NewScheduler(memberService, logger.Log)
		if err := taskScheduler.Start(&cfg.Scheduler); err != nil {
			logger.Warn("定时任务调度器启动失败", zap.Error(err))
			taskScheduler = nil
		}
	}

	// 设置路由
	r := router.Setup(cfg, memberService, teamService)

	// 创建HTTP服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// 启动服务器
	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
			zap.Bool("auth", cfg.Auth.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	// 关闭定时任务调度器
	if taskScheduler != nil {
		taskScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}

	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}

	return "configs/config.yaml"
}

// getConfigSource 获取配置来源说明
func getConfigSource() string {
	if *configFile != "" {
		return "命令行参数"
	}
	if os.Getenv("CONFIG_FILE") != "" {
		return "环境变量"
	}
	return "默认配置"
}
