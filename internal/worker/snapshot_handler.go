package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"bioPress/internal/render"
	"bioPress/internal/storage"
	"bioPress/internal/store"
	"bioPress/internal/style"
	"bioPress/internal/tasks"
)

// SnapshotHandler 负责模板画廊的真实快照任务：用当前档案数据
// 走预览渲染管线，在无头浏览器里截出模板的实际效果图。
type SnapshotHandler struct {
	docs    *store.Store
	storage *storage.Client
	logger  *slog.Logger
}

func NewSnapshotHandler(
	docs *store.Store,
	storageClient *storage.Client,
	logger *slog.Logger,
) *SnapshotHandler {
	return &SnapshotHandler{
		docs:    docs,
		storage: storageClient,
		logger:  logger,
	}
}

func (h *SnapshotHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	log := h.logger

	var payload tasks.PreviewSnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal snapshot payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("template_id", payload.TemplateID),
		slog.String("correlation_id", payload.CorrelationID),
	)
	log.Info("Starting template preview snapshot task...")

	p, err := h.docs.Load(ctx)
	if err != nil {
		log.Error("load profile failed", slog.Any("error", err))
		return err
	}
	if payload.TemplateID != "" {
		p = p.WithTemplate(payload.TemplateID)
	}

	// 照片存的是对象键，浏览器加载前换成限时链接；换不到就降级无照片。
	if key := strings.TrimSpace(p.Photo); key != "" && !strings.HasPrefix(key, "http") {
		url, presignErr := h.storage.GeneratePresignedURL(ctx, key, 10*time.Minute)
		if presignErr != nil {
			log.Warn("presign photo for snapshot failed", slog.Any("error", presignErr))
			p = p.WithPhoto("")
		} else {
			p = p.WithPhoto(url)
		}
	}

	st := style.Resolve(p.Customizations)
	entry := render.Get(p.Template)
	body, err := entry.HTML(&p, st)
	if err != nil {
		log.Error("render snapshot page failed", slog.String("template", entry.ID), slog.Any("error", err))
		return err
	}

	page, cleanup, err := renderDocumentPage(h.logger, render.PreviewDocument(body))
	if err != nil {
		log.Error("render browser page failed", slog.Any("error", err))
		return err
	}
	defer cleanup()

	const snapshotQuality = 80
	previewBytes, err := captureSnapshot(page, snapshotQuality)
	if err != nil {
		log.Error("capture snapshot failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("%s%s/preview.jpg", storage.ThumbnailPrefix, entry.ID)
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(previewBytes), int64(len(previewBytes)), "image/jpeg"); err != nil {
		log.Error("upload snapshot failed", slog.Any("error", err))
		return err
	}

	log.Info("Template preview snapshot completed.", slog.String("object_key", objectName))
	return nil
}
