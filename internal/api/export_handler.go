package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"bioPress/internal/api/middleware"
	"bioPress/internal/export"
	"bioPress/internal/storage"
	"bioPress/internal/store"
	"bioPress/internal/tasks"
)

// 导出限频：同一分钟内最多接受的导出请求数。
const (
	exportRateKey   = "biodata:export:rate"
	exportRateLimit = 5
	exportRateTTL   = time.Minute
)

// ExportHandler 负责导出任务入队与产物下载链接。
type ExportHandler struct {
	docs        *store.Store
	asynqClient *asynq.Client
	redisClient *redis.Client
	storage     *storage.Client
}

// NewExportHandler 构造 ExportHandler。
func NewExportHandler(docs *store.Store, asynqClient *asynq.Client, redisClient *redis.Client, storageClient *storage.Client) *ExportHandler {
	return &ExportHandler{
		docs:        docs,
		asynqClient: asynqClient,
		redisClient: redisClient,
		storage:     storageClient,
	}
}

// StartExport 将 PDF 导出任务入队并立即返回 202。
func (h *ExportHandler) StartExport(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := incrWithTTL(ctx, h.redisClient, exportRateKey, exportRateTTL)
	if err != nil {
		// 限频是保护措施，Redis 故障时放行而不是拒绝服务。
		middleware.LoggerFromContext(c).Warn("export rate counter unavailable", "error", err)
	} else if count > exportRateLimit {
		TooMany(c, "too many export requests, slow down")
		return
	}

	if err := h.docs.SetExportState(ctx, store.ExportPending, ""); err != nil {
		middleware.LoggerFromContext(c).Error("mark export pending", "error", err)
		Internal(c, "failed to start export")
		return
	}

	jobID := uuid.NewString()
	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewExportPDFTask(jobID, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "export request accepted",
		"job_id":  jobID,
		"task_id": info.ID,
	})
}

// GetDownloadLink 在导出完成后生成限时下载链接，完成前返回 409。
// 链接带 Content-Disposition，下载文件名由档案主人姓名派生。
func (h *ExportHandler) GetDownloadLink(c *gin.Context) {
	ctx := c.Request.Context()

	status, pdfKey, err := h.docs.ExportState(ctx)
	if err != nil {
		middleware.LoggerFromContext(c).Error("load export state", "error", err)
		Internal(c, "failed to load export state")
		return
	}
	if status != store.ExportDone || pdfKey == "" {
		Conflict(c, "pdf not ready")
		return
	}

	p, err := h.docs.Load(ctx)
	if err != nil {
		Internal(c, "failed to load profile")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURLWithParams(ctx, pdfKey, 5*time.Minute, map[string]string{
		"response-content-disposition": `attachment; filename="` + export.Filename(&p) + `"`,
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("generate download link", "error", err)
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}
