package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	correlationIDKey    = "correlationID"
	correlationIDHeader = "X-Correlation-ID"
)

// CorrelationID 为每个请求分配关联 ID。导出任务与 WebSocket 通知都带着
// 它，前端靠同一个 ID 把"点击导出"到"收到结果"的整条链路对起来。
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(correlationIDKey, id)
		c.Header(correlationIDHeader, id)

		c.Next()
	}
}

// GetCorrelationID 取出当前请求的关联 ID，拿不到时返回空串。
func GetCorrelationID(c *gin.Context) string {
	value, _ := c.Get(correlationIDKey)
	id, _ := value.(string)
	return id
}
