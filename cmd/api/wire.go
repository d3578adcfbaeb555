//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是编译期依赖注入工具,运行 `wire gen ./cmd/api` 生成wire_gen.go
// 2. 当前main.go使用手动注入,本文件声明等价的依赖链,
//    依赖关系变复杂后切换到生成代码
//
// 依赖链：
// *gin.Engine ← *handler.BookHandler ← UseCases ← book.Service
//             ← book.Repository ← *gorm.DB ← *config.Config

package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/guyidk/BookTrack-DevOps-Project/internal/application/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/config"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/mysql"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/redis"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/interface/http/handler"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/interface/http/middleware"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,      // 加载配置文件
	mysql.NewDB,      // 创建MySQL连接
	redis.NewClient,  // 创建Redis连接
	provideBookCache, // 图书列表缓存
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository, // 图书仓储
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewUpdateBookUseCase,  // 图书更新用例
	appbook.NewAddBookUseCase,     // 图书新增用例
	appbook.NewGetBookUseCase,     // 图书详情用例
	appbook.NewListBooksUseCase,   // 图书列表用例
	appbook.NewSearchBooksUseCase, // 图书搜索用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler, // 图书处理器
)

// provideBookCache 从Redis客户端和配置创建图书列表缓存
func provideBookCache(client *goredis.Client, cfg *config.Config) *redis.BookCache {
	return redis.NewBookCache(client, cfg.Redis.ListTTL)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/books", bookHandler.ListBooks)
	r.GET("/books/:id", bookHandler.GetBookByID)
	r.GET("/search", bookHandler.SearchBooks)
	r.POST("/addBook", bookHandler.AddBook)
	r.PUT("/updateBook/:id", bookHandler.UpdateBook)

	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		staticDir = "./web"
	}
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.Static("/js", filepath.Join(staticDir, "js"))
	r.Static("/css", filepath.Join(staticDir, "css"))

	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖关系生成初始化代码,这里的返回值是占位符
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
