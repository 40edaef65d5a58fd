package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"drsa-shenglin/rock-share/base/config"
	"drsa-shenglin/rock-share/base/logger"
)

// DB 全局连接，UseStorage打开时由Init填充
var DB *gorm.DB

// Init 按pg_config建连接池
func Init() error {
	pg := config.All.Pg
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		pg.Host, pg.User, pg.Password, pg.DB, pg.Port)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Errorf("pg连接失败:%v", err)
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(pg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	DB = gdb
	return nil
}
