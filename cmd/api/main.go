package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/guyidk/BookTrack-DevOps-Project/docs" // swag生成的API文档
	appbook "github.com/guyidk/BookTrack-DevOps-Project/internal/application/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/config"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/mysql"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/redis"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/interface/http/handler"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/interface/http/middleware"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/metrics"
)

// main 主程序入口
// 说明：手动依赖注入（cmd/api/wire.go里有Wire版本的注入器声明）
//
// @title        BookTrack API
// @version      1.0
// @description  图书库存管理服务
// @BasePath     /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	// 缓存是可降级依赖:连不上只告警,列表查询直接回源数据库
	var bookCache *redis.BookCache
	if redisClient, err := redis.NewClient(cfg); err != nil {
		log.Printf("[WARN] Redis不可用,图书列表缓存已禁用: %v", err)
	} else {
		bookCache = redis.NewBookCache(redisClient, cfg.Redis.ListTTL)
	}

	// 4. 初始化Prometheus指标
	metrics.InitMetrics()

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, bookCache)
	addBookUseCase := appbook.NewAddBookUseCase(bookService, bookCache)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, bookCache)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)

	// 接口层
	bookHandler := handler.NewBookHandler(
		updateBookUseCase,
		addBookUseCase,
		getBookUseCase,
		listBooksUseCase,
		searchBooksUseCase,
	)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	// 7. 注册路由
	registerRoutes(r, cfg, bookHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 BookTrack启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   图书列表: GET http://localhost%s/books\n", addr)
	fmt.Printf("   图书更新: PUT http://localhost%s/updateBook/{id}\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	// 写超时要容纳16MB图片上传,从配置读取
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, cfg *config.Config, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书REST接口(路径即对外契约,不加版本前缀)
	r.GET("/books", bookHandler.ListBooks)
	r.GET("/books/:id", bookHandler.GetBookByID)
	r.GET("/search", bookHandler.SearchBooks)
	r.POST("/addBook", bookHandler.AddBook)
	r.PUT("/updateBook/:id", bookHandler.UpdateBook)

	// 浏览器前端(静态文件)
	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		staticDir = "./web"
	}
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.Static("/js", filepath.Join(staticDir, "js"))
	r.Static("/css", filepath.Join(staticDir, "css"))
}
