package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bioPress/internal/api/middleware"
	"bioPress/internal/render"
	"bioPress/internal/storage"
	"bioPress/internal/store"
	"bioPress/internal/style"
)

// PreviewHandler 渲染实时 HTML 预览。
type PreviewHandler struct {
	docs    *store.Store
	storage *storage.Client
}

// NewPreviewHandler 构造 PreviewHandler。
func NewPreviewHandler(docs *store.Store, storageClient *storage.Client) *PreviewHandler {
	return &PreviewHandler{docs: docs, storage: storageClient}
}

// GetPreview 返回档案的单页 HTML 预览。
// ?template= 是画廊交接通道：指定已知模板时只改这次渲染的模板，
// 不写回存储；档案快照本身保持不变。
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.docs.Load(ctx)
	if err != nil {
		middleware.LoggerFromContext(c).Error("load profile for preview", "error", err)
		Internal(c, "failed to load profile")
		return
	}

	// 未注册的模板参数直接忽略，继续预览档案里存的选择。
	if override := c.Query("template"); override != "" && render.Known(override) {
		p = p.WithTemplate(override)
	}

	// 照片存的是对象键，渲染前换成浏览器可达的限时链接。
	if key := strings.TrimSpace(p.Photo); key != "" && !strings.HasPrefix(key, "http") {
		url, err := h.storage.GeneratePresignedURL(ctx, key, 10*time.Minute)
		if err != nil {
			middleware.LoggerFromContext(c).Warn("presign photo for preview", "error", err)
			p = p.WithPhoto("")
		} else {
			p = p.WithPhoto(url)
		}
	}

	st := style.Resolve(p.Customizations)
	entry := render.Get(p.Template)
	page, err := entry.HTML(&p, st)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render preview", "template", entry.ID, "error", err)
		Internal(c, "failed to render preview")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PreviewDocument(page)))
}
