package types

import "time"

type (
	SendReq struct {
		ToUser     string
		TemplateID string
		Data       string // JSON，如 {"first":{"value":"您好"}}
		URL        string
		MiniAppID  string
		MiniPath   string
		Page       string
	}

	TokenReply struct {
		AccessToken string
		Remaining   int64 // 秒
		ExpiresAt   time.Time
	}
)
