package worker

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestIsFinalAsynqAttemptOutsideTask(t *testing.T) {
	// 任务上下文之外拿不到重试信息，绝不能把普通错误当成终次失败广播。
	if isFinalAsynqAttempt(context.Background()) {
		t.Fatalf("plain context must not count as a final attempt")
	}
}

func TestExportNotifyMessageWireFormat(t *testing.T) {
	msg := ExportNotifyMessage{
		Status:        "completed",
		JobID:         "job-1",
		CorrelationID: "corr-1",
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"status"`, `"job_id"`, `"correlation_id"`, `"error_code"`, `"error_message"`} {
		if !strings.Contains(s, key) {
			t.Errorf("wire message missing %s: %s", key, s)
		}
	}
	if strings.Contains(s, "missing_keys") {
		t.Errorf("empty missing_keys must be omitted: %s", s)
	}

	msg.MissingKeys = []string{"photos/x.png"}
	data, err = json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"missing_keys"`) {
		t.Errorf("missing_keys should serialize when present")
	}
}
