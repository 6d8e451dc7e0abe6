package store

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bioPress/internal/profile"
)

func newTestStore(t *testing.T) (*gorm.DB, *Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, New(db)
}

func TestLoadServesDefaultsWhenEmpty(t *testing.T) {
	_, s := newTestStore(t)
	p, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(p, profile.Default()) {
		t.Fatalf("empty store must serve the built-in default profile")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	_, s := newTestStore(t)
	ctx := context.Background()

	p := profile.Default().
		WithTemplate("template7").
		ToggleSection("family")
	p.Customizations.ThemeID = "emerald"

	if err := s.Save(ctx, &p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip changed the profile\n got %+v\nwant %+v", got, p)
	}
}

func TestSaveIsUpsert(t *testing.T) {
	db, s := newTestStore(t)
	ctx := context.Background()

	first := profile.Default().WithTemplate("template2")
	second := profile.Default().WithTemplate("template3")
	if err := s.Save(ctx, &first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, &second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	var count int64
	if err := db.Model(&Document{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("documents = %d, want a single upserted row", count)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Template != "template3" {
		t.Errorf("template = %q, want latest save", got.Template)
	}
}

func TestLoadSelfHealsCorruptSnapshot(t *testing.T) {
	db, s := newTestStore(t)
	ctx := context.Background()

	doc := Document{Key: ProfileKey, Content: datatypes.JSON([]byte(`{"sections":[{`))}
	if err := db.Create(&doc).Error; err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	p, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load must not fail on corrupt content: %v", err)
	}
	if !reflect.DeepEqual(p, profile.Default()) {
		t.Fatalf("corrupt snapshot must fall back to defaults")
	}
}

func TestReset(t *testing.T) {
	_, s := newTestStore(t)
	ctx := context.Background()

	p := profile.Default().WithTemplate("template5")
	if err := s.Save(ctx, &p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !reflect.DeepEqual(got, profile.Default()) {
		t.Fatalf("reset must return the default profile")
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Template != profile.DefaultTemplate {
		t.Errorf("template after reset = %q", loaded.Template)
	}
}

func TestExportStateLifecycle(t *testing.T) {
	_, s := newTestStore(t)
	ctx := context.Background()

	status, key, err := s.ExportState(ctx)
	if err != nil {
		t.Fatalf("export state: %v", err)
	}
	if status != ExportIdle || key != "" {
		t.Fatalf("initial state = %q/%q, want idle", status, key)
	}

	// 导出可能先于第一次显式保存发生，状态写入必须自建行
	if err := s.SetExportState(ctx, ExportPending, ""); err != nil {
		t.Fatalf("set pending: %v", err)
	}
	status, _, err = s.ExportState(ctx)
	if err != nil {
		t.Fatalf("export state: %v", err)
	}
	if status != ExportPending {
		t.Fatalf("status = %q, want pending", status)
	}

	if err := s.SetExportState(ctx, ExportDone, "generated-biodata/abc.pdf"); err != nil {
		t.Fatalf("set done: %v", err)
	}
	status, key, err = s.ExportState(ctx)
	if err != nil {
		t.Fatalf("export state: %v", err)
	}
	if status != ExportDone || key != "generated-biodata/abc.pdf" {
		t.Fatalf("state = %q/%q", status, key)
	}

	// 失败不清除已有产物键
	if err := s.SetExportState(ctx, ExportFailed, ""); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	status, key, err = s.ExportState(ctx)
	if err != nil {
		t.Fatalf("export state: %v", err)
	}
	if status != ExportFailed {
		t.Fatalf("status = %q, want failed", status)
	}
	if key != "generated-biodata/abc.pdf" {
		t.Errorf("pdf key should survive a failed retry, got %q", key)
	}

	// 状态写入不得破坏档案快照
	p, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(p, profile.Default()) {
		t.Fatalf("status-only rows must still serve the default profile")
	}
}
