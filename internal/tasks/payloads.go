package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeExportPDF       = "export:pdf"
	TypePreviewSnapshot = "preview:snapshot"
)

// NotifyChannel 是会话通知的 Redis 发布通道，
// 工作器发布导出结果，API 侧经 WebSocket 转发给浏览器。
const NotifyChannel = "biodata:notify"

// ExportPDFPayload 描述一次档案导出所需的最小信息。
// JobID 由 API 侧生成，贯穿任务与完成通知。
type ExportPDFPayload struct {
	JobID         string `json:"job_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewExportPDFTask 构造一个新的档案 PDF 导出任务。
func NewExportPDFTask(jobID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportPDFPayload{
		JobID:         jobID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportPDF, payload), nil
}

// PreviewSnapshotPayload 描述一次模板画廊快照刷新。
// TemplateID 为空表示刷新当前档案选定的模板。
type PreviewSnapshotPayload struct {
	TemplateID    string `json:"template_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewPreviewSnapshotTask 构造一个新的预览快照任务。
func NewPreviewSnapshotTask(templateID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PreviewSnapshotPayload{
		TemplateID:    templateID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePreviewSnapshot, payload), nil
}
