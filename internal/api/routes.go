package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"bioPress/internal/storage"
	"bioPress/internal/store"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	docs *store.Store,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	clamdAddr string,
) {
	profileHandler := NewProfileHandler(docs)
	templateHandler := NewTemplateHandler(asynqClient, storageClient)
	previewHandler := NewPreviewHandler(docs, storageClient)
	exportHandler := NewExportHandler(docs, asynqClient, redisClient, storageClient)
	photoHandler := NewPhotoHandler(docs, storageClient, logger, clamdAddr)
	wsHandler := NewWsHandler(redisClient, logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.GET("/profile", profileHandler.GetProfile)
		v1.PUT("/profile", profileHandler.PutProfile)
		v1.POST("/profile/reset", profileHandler.ResetProfile)

		v1.GET("/templates", templateHandler.ListTemplates)
		v1.GET("/templates/:id/thumbnail", templateHandler.GetThumbnail)
		v1.GET("/templates/:id/snapshot", templateHandler.GetSnapshot)
		v1.POST("/templates/:id/snapshot", templateHandler.RefreshSnapshot)
		v1.GET("/themes", templateHandler.ListThemes)
		v1.GET("/icons", templateHandler.ListIcons)

		v1.GET("/preview", previewHandler.GetPreview)

		v1.POST("/export", exportHandler.StartExport)
		v1.GET("/export/download-link", exportHandler.GetDownloadLink)

		v1.POST("/photo", photoHandler.UploadPhoto)
		v1.GET("/photo/view", photoHandler.GetPhotoURL)
	}
}
