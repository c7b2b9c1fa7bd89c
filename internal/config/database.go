package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newGormLogger GORM用のロガーを作成
func newGormLogger(level string) logger.Interface {
	return logger.New(
		log.New(log.Writer(), "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second, // 1秒以上のクエリを遅いと判断
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// dialector ドライバーに応じたDialectorを返す
func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName)
		log.Printf("データベースに接続中: %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return mysql.Open(dsn), nil
	case "sqlite":
		path := cfg.Database.SQLitePath
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("データベースディレクトリの作成に失敗: %w", err)
			}
		}
		// 外部キー制約 (ON DELETE CASCADE) はSQLiteでは接続ごとに有効化が必要
		dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		log.Printf("データベースに接続中: sqlite %s", path)
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("未対応のデータベースドライバーです: %s", cfg.Database.Driver)
	}
}

// InitDB データベース接続を初期化
func InitDB(cfg *Config) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	// GORM設定
	gormConfig := &gorm.Config{
		Logger:         newGormLogger(cfg.Database.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	// データベースに接続
	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, err
	}

	// 接続プールの設定
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 接続テスト
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("データベース接続テストに失敗: %w", err)
	}

	log.Println("データベース接続に成功しました")

	return db, nil
}
