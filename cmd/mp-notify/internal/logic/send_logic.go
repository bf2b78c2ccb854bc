package logic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/svc"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/types"
	"github.com/gotid/wechat-mp/msg"
	"github.com/zeromicro/go-zero/core/logx"
)

type SendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendLogic(ctx context.Context, svcCtx *svc.ServiceContext) SendLogic {
	return SendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Send 发送一条模板消息。
func (l *SendLogic) Send(req types.SendReq) (bool, error) {
	m, err := buildMessage(req)
	if err != nil {
		return false, err
	}

	ok, err := l.svcCtx.WeChat.MP().SendTemplate(m)
	if err != nil {
		l.Errorf("发送模板消息失败：touser=%s, 错误=%v", req.ToUser, err)
		return false, err
	}

	l.Infof("模板消息已发送：touser=%s, template_id=%s", req.ToUser, req.TemplateID)
	return ok, nil
}

func buildMessage(req types.SendReq) (*msg.TemplateMessage, error) {
	data := map[string]msg.TemplateData{}
	if req.Data != "" {
		if err := json.Unmarshal([]byte(req.Data), &data); err != nil {
			return nil, fmt.Errorf("模板数据不是有效的 JSON：%w", err)
		}
	}

	m := msg.NewTemplateMessage(req.ToUser, req.TemplateID, data)
	m.URL = req.URL
	m.Page = req.Page
	if req.MiniAppID != "" {
		m.MiniProgram = &msg.MiniProgram{
			AppID:    req.MiniAppID,
			PagePath: req.MiniPath,
		}
	}

	return m, nil
}
