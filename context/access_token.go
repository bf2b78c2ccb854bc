package context

import (
	"encoding/json"

	"github.com/gotid/wechat-mp/metrics"
	"github.com/gotid/wechat-mp/util"
	"github.com/zeromicro/go-zero/core/logx"
)

// DefaultExpiresIn 微信未返回有效期时使用的默认值（秒）。
const DefaultExpiresIn = 7200

// AccessToken 是一个公众号访问令牌。
type AccessToken struct {
	util.WechatError
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FetchAccessToken 网络获取公众号访问令牌，不读写缓存。
func (ctx *Context) FetchAccessToken() (*AccessToken, error) {
	if ctx.AppID == "" || ctx.AppSecret == "" {
		metrics.TokenFetches.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, &util.AuthError{Err: util.ErrMissingParam}
	}

	uri, err := util.BuildURL(ctx.tokenEndpoint(), map[string]string{
		"grant_type": "client_credential",
		"appid":      ctx.AppID,
		"secret":     ctx.AppSecret,
	})
	if err != nil {
		metrics.TokenFetches.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, &util.AuthError{Err: err}
	}

	data, err := ctx.Client().Get(uri)
	if err != nil {
		metrics.TokenFetches.WithLabelValues(metrics.ResultTransport).Inc()
		return nil, err
	}

	token := &AccessToken{}
	if err = json.Unmarshal(data, token); err != nil {
		metrics.TokenFetches.WithLabelValues(metrics.ResultMalformed).Inc()
		return nil, &util.AuthError{Raw: string(data), Err: err}
	}

	if token.AccessToken == "" {
		metrics.TokenFetches.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, &util.AuthError{Code: token.ErrCode, Msg: token.ErrMsg, Raw: string(data)}
	}

	if token.ExpiresIn <= 0 {
		token.ExpiresIn = DefaultExpiresIn
	}

	metrics.TokenFetches.WithLabelValues(metrics.ResultSuccess).Inc()
	return token, nil
}

// AccessToken 获取公众号访问令牌，优先使用缓存，缓存不可用时网络获取并回写缓存。
func (ctx *Context) AccessToken() (string, error) {
	if ctx.Cache != nil {
		if token, ok := ctx.Cache.Get(); ok {
			metrics.TokenCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return token, nil
		}
		metrics.TokenCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}

	token, err := ctx.FetchAccessToken()
	if err != nil {
		return "", err
	}
	logx.Infof("已获取公众号 %s 的访问令牌，有效期 %d 秒", ctx.AppID, token.ExpiresIn)

	if ctx.Cache != nil {
		// 保存失败不影响本次使用
		if err = ctx.Cache.Put(token.AccessToken, token.ExpiresIn); err != nil {
			logx.Errorf("保存访问令牌失败：%v", err)
		}
	}

	return token.AccessToken, nil
}
