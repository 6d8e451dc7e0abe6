package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"bioPress/internal/api/middleware"
	"bioPress/internal/assets"
	"bioPress/internal/render"
	"bioPress/internal/storage"
	"bioPress/internal/style"
	"bioPress/internal/tasks"
)

// TemplateHandler 暴露模板画廊与主题目录。模板目录在进程启动时
// 就固定；画廊快照由后台任务用真实档案数据生成。
type TemplateHandler struct {
	asynqClient *asynq.Client
	storage     *storage.Client
}

// NewTemplateHandler 构造 TemplateHandler。
func NewTemplateHandler(asynqClient *asynq.Client, storageClient *storage.Client) *TemplateHandler {
	return &TemplateHandler{
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

type templateListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PDFExport bool   `json:"pdf_export"`
}

// ListTemplates 按注册顺序列出全部模板及其导出能力。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	entries := render.List()
	items := make([]templateListItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, templateListItem{
			ID:        e.ID,
			Name:      e.Name,
			PDFExport: e.PDF != nil,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetThumbnail 返回模板的占位缩略图。未知 ID 与渲染路径一致，
// 回落到默认模板的缩略图。
func (h *TemplateHandler) GetThumbnail(c *gin.Context) {
	entry := render.Get(c.Param("id"))
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", entry.Thumbnail)
}

// RefreshSnapshot 为指定模板入队一次真实快照刷新。
func (h *TemplateHandler) RefreshSnapshot(c *gin.Context) {
	entry := render.Get(c.Param("id"))

	task, err := tasks.NewPreviewSnapshotTask(entry.ID, middleware.GetCorrelationID(c))
	if err != nil {
		Internal(c, "failed to create task")
		return
	}
	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		middleware.LoggerFromContext(c).Error("enqueue snapshot task", "error", err)
		Internal(c, "failed to enqueue snapshot")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "snapshot refresh accepted",
		"template_id": entry.ID,
		"task_id":     info.ID,
	})
}

// GetSnapshot 返回模板真实快照的限时链接。快照尚未生成时对象
// 不存在，浏览器应回落到占位缩略图。
func (h *TemplateHandler) GetSnapshot(c *gin.Context) {
	entry := render.Get(c.Param("id"))
	objectKey := fmt.Sprintf("%s%s/preview.jpg", storage.ThumbnailPrefix, entry.ID)

	signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		middleware.LoggerFromContext(c).Error("presign snapshot", "error", err)
		Internal(c, "failed to generate snapshot url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// ListThemes 按画廊顺序列出装饰主题。
func (h *TemplateHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": style.Themes()})
}

// ListIcons 列出可用作页眉图标的内置矢量资源引用。
func (h *TemplateHandler) ListIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": assets.Icons()})
}
