package wechat

import (
	"github.com/gotid/wechat-mp/context"
	"github.com/gotid/wechat-mp/mp"
)

// WeChat 微信接口控制器
type WeChat struct {
	Context *context.Context
}

// New 返回微信控制器
func New(context *context.Context) *WeChat {
	return &WeChat{Context: context}
}

// MP 返回公众号控制器
func (wc *WeChat) MP() *mp.MP {
	return mp.New(wc.Context)
}
