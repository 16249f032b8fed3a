package repository

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"subflix/ddd/infrastructure/database/po"
	"subflix/pkg/config"
)

// Database 数据库连接封装
type Database struct {
	Self *gorm.DB
}

// NewDatabase opens the MySQL connection, applies pool settings and migrates
// the subflix tables.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&po.VideoFile{}, &po.ProcessingJob{}, &po.AppSettings{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Database{Self: db}, nil
}

// Close 关闭数据库连接
func (d *Database) Close() {
	if d == nil || d.Self == nil {
		return
	}
	if sqlDB, err := d.Self.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
