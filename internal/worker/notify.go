package worker

// ExportNotifyMessage 是经 Redis Pub/Sub 转发给浏览器的统一消息协议。
// 注意：字段名与前端解析保持一致。
type ExportNotifyMessage struct {
	Status        string   `json:"status"`
	JobID         string   `json:"job_id"`
	CorrelationID string   `json:"correlation_id"`
	ErrorCode     int      `json:"error_code"`
	ErrorMessage  string   `json:"error_message"`
	MissingKeys   []string `json:"missing_keys,omitempty"`
}
