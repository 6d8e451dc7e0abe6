package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bioPress/internal/api/middleware"
	"bioPress/internal/profile"
	"bioPress/internal/store"
)

// 整份档案快照的上限。正常文档远小于此，超限说明客户端行为异常。
const maxProfileBytes = 1 << 20

// ProfileHandler 负责档案文档的读写。
type ProfileHandler struct {
	docs *store.Store
}

// NewProfileHandler 构造 ProfileHandler。
func NewProfileHandler(docs *store.Store) *ProfileHandler {
	return &ProfileHandler{docs: docs}
}

// GetProfile 返回当前档案；会话首次访问时就是内置默认档案。
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.docs.Load(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("load profile", "error", err)
		Internal(c, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// PutProfile 覆盖保存整份档案。入参先合并到默认值之上再做形状校验，
// 缺键的旧客户端快照因此也能被接受。
func (h *ProfileHandler) PutProfile(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProfileBytes+1))
	if err != nil {
		BadRequest(c, "failed to read body")
		return
	}
	if len(raw) > maxProfileBytes {
		BadRequest(c, "profile too large")
		return
	}

	p, err := profile.MergeOverDefaults(raw)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if err := profile.ValidateShape(&p); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.docs.Save(c.Request.Context(), &p); err != nil {
		middleware.LoggerFromContext(c).Error("save profile", "error", err)
		Internal(c, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ResetProfile 把档案恢复为内置默认内容。
func (h *ProfileHandler) ResetProfile(c *gin.Context) {
	p, err := h.docs.Reset(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("reset profile", "error", err)
		Internal(c, "failed to reset profile")
		return
	}
	c.JSON(http.StatusOK, p)
}
