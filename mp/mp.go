package mp

import (
	"github.com/gotid/wechat-mp/context"
	"github.com/gotid/wechat-mp/util"
)

// MP 微信公众号控制器
type MP struct {
	*context.Context
}

// New 返回一个新的公众号控制器
func New(ctx *context.Context) *MP {
	return &MP{ctx}
}

// 投递公众号网络请求
func (m *MP) post(rawURL, accessToken string, body interface{}) ([]byte, error) {
	// 构建完整请求网址
	uri, err := util.BuildURL(rawURL, map[string]string{
		"access_token": accessToken,
	})
	if err != nil {
		return nil, err
	}

	return m.Client().PostJSON(uri, body)
}
