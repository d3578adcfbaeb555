package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// 让gorm把驱动层的唯一索引冲突翻译成gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if err := db.AutoMigrate(&BookModel{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag;
//    domain/book/entity.go是领域实体,不依赖GORM,Repository负责转换
// 2. ID是24位十六进制文档ID,应用层生成,不用自增主键
// 3. Title有唯一索引:标题唯一性预检查存在并发窗口,索引是权威约束
// 4. Image存base64文本,LONGTEXT足够容纳16MB图片编码后的约21MB
type BookModel struct {
	ID              string    `gorm:"primaryKey;size:24;comment:文档ID(24位十六进制)"`
	Title           string    `gorm:"uniqueIndex;size:100;not null;comment:书名(全局唯一)"`
	Author          string    `gorm:"size:150;not null;comment:作者"`
	ISBN            string    `gorm:"size:20;not null;comment:ISBN号"`
	Genre           string    `gorm:"size:100;comment:分类"`
	AvailableCopies int       `gorm:"not null;default:0;comment:在库数量"`
	Image           string    `gorm:"type:longtext;comment:封面图片(base64)"`
	CreatedAt       time.Time `gorm:"comment:创建时间"`
	UpdatedAt       time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
