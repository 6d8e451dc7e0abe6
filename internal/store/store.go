// Package store 负责档案快照的持久化。整份档案作为一条 JSONB
// 文档存取，键固定；导出产物的状态也记在同一行上。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"bioPress/internal/config"
	"bioPress/internal/profile"
)

// ProfileKey 是单档案部署下档案文档的固定键。
const ProfileKey = "biodata:profile"

// 导出产物状态机：idle -> pending -> done/failed。
const (
	ExportIdle    = "idle"
	ExportPending = "pending"
	ExportDone    = "done"
	ExportFailed  = "failed"
)

// Document 是档案文档行。Content 保存整份 Profile 的 JSON 快照，
// PdfKey/Status 记录最近一次导出的产物与状态。
type Document struct {
	gorm.Model
	Key     string         `gorm:"uniqueIndex;size:64"`
	Content datatypes.JSON `gorm:"type:jsonb"`
	PdfKey  string         `gorm:"size:512"`
	Status  string         `gorm:"size:32"`
}

// Open 使用配置初始化 PostgreSQL 连接，并返回 GORM 数据库实例。
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate 建表。API 启动时执行，cmd/admin 也可显式触发。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Document{})
}

// Store 是档案文档的存取面。
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load 读取档案。行不存在返回内置默认档案；快照损坏时同样回落默认
// 并记录告警，读路径永不失败到调用方。
func (s *Store) Load(ctx context.Context) (profile.Profile, error) {
	var doc Document
	err := s.db.WithContext(ctx).Where("key = ?", ProfileKey).First(&doc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return profile.Default(), nil
	case err != nil:
		return profile.Default(), fmt.Errorf("load profile: %w", err)
	}

	p, err := profile.MergeOverDefaults(doc.Content)
	if err != nil {
		slog.Warn("stored profile unreadable, serving defaults", "error", err)
		return profile.Default(), nil
	}
	return p, nil
}

// Save 覆盖保存整份档案快照（按键 upsert）。
func (s *Store) Save(ctx context.Context, p *profile.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	doc := Document{
		Key:     ProfileKey,
		Content: datatypes.JSON(raw),
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Reset 把档案恢复为内置默认内容并返回它。
func (s *Store) Reset(ctx context.Context) (profile.Profile, error) {
	p := profile.Default()
	if err := s.Save(ctx, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// SetExportState 更新导出状态与产物对象键。行不存在时创建之，
// 导出可能先于第一次显式保存发生。pdfKey 为空不清除已有产物键。
func (s *Store) SetExportState(ctx context.Context, status, pdfKey string) error {
	cols := []string{"status", "updated_at"}
	if pdfKey != "" {
		cols = append(cols, "pdf_key")
	}
	doc := Document{
		Key:    ProfileKey,
		Status: status,
		PdfKey: pdfKey,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("set export state: %w", err)
	}
	return nil
}

// ExportState 返回最近一次导出的状态与产物对象键。
func (s *Store) ExportState(ctx context.Context) (status, pdfKey string, err error) {
	var doc Document
	e := s.db.WithContext(ctx).Where("key = ?", ProfileKey).First(&doc).Error
	switch {
	case errors.Is(e, gorm.ErrRecordNotFound):
		return ExportIdle, "", nil
	case e != nil:
		return "", "", fmt.Errorf("load export state: %w", e)
	}
	if doc.Status == "" {
		return ExportIdle, doc.PdfKey, nil
	}
	return doc.Status, doc.PdfKey, nil
}
