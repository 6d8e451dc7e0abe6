package errcode

// 导出通知里携带的错误码，前端用它区分告警与失败：
// 0 表示成功；4xxx 为可降级告警，导出仍会产出文件（例如照片对象缺失被跳过）；
// 5xxx 为系统错误，本次导出终止。
const (
	OK              = 0
	ResourceMissing = 4004
	SystemError     = 5000
)
