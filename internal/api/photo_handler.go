package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bioPress/internal/storage"
	"bioPress/internal/store"
)

// 照片上传限制。
const maxPhotoBytes = 10 << 20

// PhotoHandler 负责照片上传与访问。上传会先经 clamd 扫描。
type PhotoHandler struct {
	docs      *store.Store
	Storage   *storage.Client
	Logger    *slog.Logger
	ClamdAddr string
}

// NewPhotoHandler 返回 PhotoHandler 实例。
func NewPhotoHandler(docs *store.Store, storageClient *storage.Client, logger *slog.Logger, clamdAddr string) *PhotoHandler {
	return &PhotoHandler{
		docs:      docs,
		Storage:   storageClient,
		Logger:    logger,
		ClamdAddr: clamdAddr,
	}
}

// UploadPhoto 接收照片、扫描病毒、入库并把对象键写进档案。
// 只接受 PNG/JPEG；旧照片对象会被清理。
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if file.Size > maxPhotoBytes {
		BadRequest(c, "photo too large")
		return
	}

	ext, ok := photoExt(file.Header.Get("Content-Type"))
	if !ok {
		BadRequest(c, "only png and jpeg photos are accepted")
		return
	}

	clamdClient := clamd.NewClamd(h.ClamdAddr)

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		h.Logger.Error("scan file", slog.String("error", err.Error()))
		Internal(c, "failed to scan file")
		return
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	fileReader, err = file.Open()
	if err != nil {
		Internal(c, "failed to reopen file")
		return
	}
	defer fileReader.Close()

	ctx := c.Request.Context()
	objectKey := fmt.Sprintf("%s%s%s", storage.PhotoPrefix, uuid.NewString(), ext)
	contentType := file.Header.Get("Content-Type")

	if _, err := h.Storage.UploadFile(ctx, objectKey, fileReader, file.Size, contentType); err != nil {
		h.Logger.Error("upload photo", slog.String("error", err.Error()))
		Internal(c, "failed to upload photo")
		return
	}

	// 把新照片写进档案快照，并清理被替换的旧对象。
	p, err := h.docs.Load(ctx)
	if err != nil {
		Internal(c, "failed to load profile")
		return
	}
	oldKey := p.Photo
	p = p.WithPhoto(objectKey)
	if err := h.docs.Save(ctx, &p); err != nil {
		h.Logger.Error("save profile after photo upload", slog.String("error", err.Error()))
		Internal(c, "failed to save profile")
		return
	}
	if strings.HasPrefix(oldKey, storage.PhotoPrefix) && oldKey != objectKey {
		if err := h.Storage.DeleteObject(ctx, oldKey); err != nil {
			h.Logger.Warn("delete replaced photo", slog.String("objectKey", oldKey), slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey})
}

// GetPhotoURL 返回照片的临时预签名 URL。
func (h *PhotoHandler) GetPhotoURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !strings.HasPrefix(objectKey, storage.PhotoPrefix) {
		BadRequest(c, "invalid photo key")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.Logger.Error("generate presigned url", slog.String("error", err.Error()))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

func photoExt(contentType string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/png":
		return ".png", true
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	default:
		return "", false
	}
}
