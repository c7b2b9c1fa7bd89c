package services

import (
	"time"

	"gorm.io/gorm"
)

// Version アプリケーションのバージョン (ビルド時に上書き)
var Version = "dev"

// HealthStatus ヘルスチェックの結果
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus() HealthStatus
}

// healthService HealthServiceの実装
type healthService struct {
	db        *gorm.DB
	startTime time.Time
}

// NewHealthService HealthServiceを作成
func NewHealthService(db *gorm.DB) HealthService {
	return &healthService{
		db:        db,
		startTime: time.Now(),
	}
}

// GetStatus サービスのステータスを取得
func (s *healthService) GetStatus() HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Database:  "ok",
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	}

	// データベースへの疎通確認
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status.Status = "degraded"
		status.Database = "unavailable"
	}

	return status
}
