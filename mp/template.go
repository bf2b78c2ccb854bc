package mp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gotid/wechat-mp/metrics"
	"github.com/gotid/wechat-mp/msg"
	"github.com/gotid/wechat-mp/util"
	"github.com/zeromicro/go-zero/core/logx"
)

// 发送接口的响应，errcode 缺失视为无法解析
type sendResult struct {
	ErrCode *int64 `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
	MsgID   int64  `json:"msgid"`
}

// SendTemplateMessage 使用指定的访问令牌发送模板消息。
// 仅当微信返回 errcode=0 时返回 true；失败时 error 为 *util.SendError 或 *util.TransportError。
func (m *MP) SendTemplateMessage(accessToken string, tm *msg.TemplateMessage) (bool, error) {
	if accessToken == "" {
		metrics.TemplateSends.WithLabelValues(metrics.ResultInvalid).Inc()
		return false, &util.SendError{Err: fmt.Errorf("access_token 为空：%w", util.ErrMissingParam)}
	}
	if err := tm.Validate(); err != nil {
		metrics.TemplateSends.WithLabelValues(metrics.ResultInvalid).Inc()
		return false, &util.SendError{Err: err}
	}

	data, err := m.post(m.TemplateEndpoint(), accessToken, tm)
	if err != nil {
		var te *util.TransportError
		if errors.As(err, &te) {
			metrics.TemplateSends.WithLabelValues(metrics.ResultTransport).Inc()
			return false, err
		}
		metrics.TemplateSends.WithLabelValues(metrics.ResultInvalid).Inc()
		return false, &util.SendError{Err: err}
	}

	var ret sendResult
	if err = json.Unmarshal(data, &ret); err != nil {
		metrics.TemplateSends.WithLabelValues(metrics.ResultMalformed).Inc()
		return false, &util.SendError{Raw: string(data), Err: err}
	}
	if ret.ErrCode == nil {
		metrics.TemplateSends.WithLabelValues(metrics.ResultMalformed).Inc()
		return false, &util.SendError{Raw: string(data), Err: errors.New("响应缺少 errcode")}
	}

	if *ret.ErrCode != 0 {
		metrics.TemplateSends.WithLabelValues(metrics.ResultRejected).Inc()
		logx.Errorf("发送模板消息被拒绝：touser=%s, template_id=%s, 响应=%s", tm.ToUser, tm.TemplateID, data)
		return false, &util.SendError{Code: *ret.ErrCode, Msg: ret.ErrMsg, Raw: string(data)}
	}

	metrics.TemplateSends.WithLabelValues(metrics.ResultSuccess).Inc()
	logx.Debugf("模板消息已发送：touser=%s, msgid=%d", tm.ToUser, ret.MsgID)
	return true, nil
}

// SendTemplate 自动获取访问令牌后发送模板消息，获取令牌失败时直接返回 false。
func (m *MP) SendTemplate(tm *msg.TemplateMessage) (bool, error) {
	accessToken, err := m.AccessToken()
	if err != nil {
		return false, err
	}
	return m.SendTemplateMessage(accessToken, tm)
}
