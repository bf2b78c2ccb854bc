package msg

import (
	"fmt"
	"strings"

	"github.com/gotid/wechat-mp/util"
)

type (
	// TemplateMessage 公众号模板消息
	// https://developers.weixin.qq.com/doc/offiaccount/Message_Management/Template_Message_Interface.html
	TemplateMessage struct {
		ToUser      string                  `json:"touser"`                // 接收者 openid
		TemplateID  string                  `json:"template_id"`           // 模板ID
		Data        map[string]TemplateData `json:"data"`                  // 模板数据
		URL         string                  `json:"url,omitempty"`         // 点击跳转的网址
		MiniProgram *MiniProgram            `json:"miniprogram,omitempty"` // 点击跳转的小程序
		Page        string                  `json:"page,omitempty"`        // 点击跳转的小程序页面（订阅消息）
	}

	// TemplateData 模板字段值
	TemplateData struct {
		Value string `json:"value"`
		Color string `json:"color,omitempty"`
	}

	// MiniProgram 跳转小程序所需数据
	MiniProgram struct {
		AppID    string `json:"appid"`
		PagePath string `json:"pagepath,omitempty"`
	}
)

// NewTemplateMessage 返回一个只含必填字段的模板消息。
func NewTemplateMessage(toUser, templateID string, data map[string]TemplateData) *TemplateMessage {
	return &TemplateMessage{
		ToUser:     toUser,
		TemplateID: templateID,
		Data:       data,
	}
}

// Values 由字段名与值构建模板数据。
func Values(kv map[string]string) map[string]TemplateData {
	data := make(map[string]TemplateData, len(kv))
	for k, v := range kv {
		data[k] = TemplateData{Value: v}
	}
	return data
}

// Validate 校验必填字段。
func (m *TemplateMessage) Validate() error {
	if m == nil {
		return fmt.Errorf("模板消息为空：%w", util.ErrMissingParam)
	}
	if strings.TrimSpace(m.ToUser) == "" {
		return fmt.Errorf("touser 为空：%w", util.ErrMissingParam)
	}
	if strings.TrimSpace(m.TemplateID) == "" {
		return fmt.Errorf("template_id 为空：%w", util.ErrMissingParam)
	}
	if m.MiniProgram != nil && m.MiniProgram.AppID == "" {
		return fmt.Errorf("miniprogram.appid 为空：%w", util.ErrMissingParam)
	}
	return nil
}
