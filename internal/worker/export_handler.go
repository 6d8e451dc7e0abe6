package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"bioPress/internal/errcode"
	"bioPress/internal/export"
	"bioPress/internal/storage"
	"bioPress/internal/store"
	"bioPress/internal/tasks"
)

// ExportHandler 负责消费档案 PDF 导出任务。
type ExportHandler struct {
	docs        *store.Store
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewExportHandler 创建任务处理器。
func NewExportHandler(
	docs *store.Store,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
) *ExportHandler {
	return &ExportHandler{
		docs:        docs,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExportHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ExportPDFPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("job_id", payload.JobID),
	)
	log.Info("Starting biodata PDF export task...")

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		if err := h.docs.SetExportState(ctx, store.ExportFailed, ""); err != nil {
			log.Error("mark export failed", slog.Any("error", err))
		}
		notify := ExportNotifyMessage{
			Status:        "error",
			JobID:         payload.JobID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	p, err := h.docs.Load(ctx)
	if err != nil {
		log.Error("load profile failed", slog.Any("error", err))
		return err
	}

	// 照片对象丢失不阻断导出：降级为无照片继续生成并提示前端。
	var photo []byte
	var missingKeys []string
	if key := strings.TrimSpace(p.Photo); key != "" {
		photo, err = h.storage.ReadObject(ctx, key)
		if err != nil {
			if !storage.IsNoSuchKey(err) {
				log.Error("fetch profile photo failed", slog.Any("error", err))
				return err
			}
			log.Warn("profile photo object missing, exporting without it", slog.String("object_key", key))
			missingKeys = append(missingKeys, key)
			photo = nil
		}
	}

	pdfBytes, _, err := export.ToPDF(&p, photo)
	if err != nil {
		log.Error("render pdf failed", slog.Any("error", err))
		return err
	}

	objectKey := fmt.Sprintf("%s%s.pdf", storage.ExportPrefix, uuid.NewString())
	if _, err := h.storage.UploadFile(ctx, objectKey, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	if err := h.docs.SetExportState(ctx, store.ExportDone, objectKey); err != nil {
		log.Error("update export state failed", slog.Any("error", err))
		return err
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		JobID:         payload.JobID,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if len(missingKeys) > 0 {
		notify.ErrorCode = errcode.ResourceMissing
		notify.ErrorMessage = "部分图片资源缺失/无效，已自动跳过并继续生成"
		notify.MissingKeys = missingKeys
		log.Warn("pdf generated with missing assets",
			slog.Int("missing_count", len(missingKeys)),
			slog.Any("missing_keys", missingKeys),
		)
	}
	if err := h.publishExportNotify(ctx, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("PDF export task completed successfully.",
		slog.String("object_key", objectKey),
		slog.Int("pdf_bytes", len(pdfBytes)),
	)
	return nil
}

func (h *ExportHandler) publishExportNotify(ctx context.Context, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	if err := h.redisClient.Publish(ctx, tasks.NotifyChannel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", tasks.NotifyChannel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
