package models

import (
	"gorm.io/gorm"
)

// All マイグレーション対象 (依存順)
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Follow{},
		&Like{},
		&Comment{},
		&Review{},
	}
}

// AutoMigrate スキーマを作成・更新
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

// DropAll テーブルを削除（逆順）
func DropAll(db *gorm.DB) error {
	tables := All()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return err
		}
	}
	return nil
}
