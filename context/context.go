package context

import (
	"github.com/gotid/wechat-mp/cache"
	"github.com/gotid/wechat-mp/util"
)

const (
	// DefaultTokenURL 获取公众号访问令牌的接口地址
	DefaultTokenURL = "https://api.weixin.qq.com/cgi-bin/token"
	// DefaultTemplateURL 发送模板消息的接口地址
	DefaultTemplateURL = "https://api.weixin.qq.com/cgi-bin/message/template/send"
)

// Context 公众号上下文结构，进程启动时创建一次并共享。
type Context struct {
	AppID     string // 公众号 AppID
	AppSecret string // 公众号 AppSecret

	TokenURL    string // 为空时使用 DefaultTokenURL
	TemplateURL string // 为空时使用 DefaultTemplateURL

	// 网络请求客户端，为空时使用默认超时
	HTTP *util.Client

	// 访问令牌缓存，为空时每次都网络获取
	Cache *cache.TokenCache
}

var defaultClient = util.NewClient(util.DefaultTimeout)

// Client 返回网络请求客户端。
func (ctx *Context) Client() *util.Client {
	if ctx.HTTP == nil {
		return defaultClient
	}
	return ctx.HTTP
}

// TemplateEndpoint 返回模板消息接口地址。
func (ctx *Context) TemplateEndpoint() string {
	if ctx.TemplateURL != "" {
		return ctx.TemplateURL
	}
	return DefaultTemplateURL
}

func (ctx *Context) tokenEndpoint() string {
	if ctx.TokenURL != "" {
		return ctx.TokenURL
	}
	return DefaultTokenURL
}
