package util

import (
	"errors"
	"fmt"
)

// ErrMissingParam 表示调用参数缺失。
var ErrMissingParam = errors.New("参数缺失")

// WechatError 是微信接口通用错误结构体。
type WechatError struct {
	ErrCode int64  `json:"errcode"`
	ErrMsg  string `json:"errmsg,omitempty"`
}

// TransportError 网络请求失败（连接、超时、非 200 状态码）。
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("网络请求错误：网址=%s, 错误=%v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError 令牌签发接口拒绝请求或未返回令牌。
type AuthError struct {
	Code int64
	Msg  string
	Raw  string // 原始响应，便于排查
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("获取 access_token 错误：%v, 响应=%s", e.Err, e.Raw)
	}
	return fmt.Sprintf("获取 access_token 错误：errcode=%d, errmsg=%s, 响应=%s", e.Code, e.Msg, e.Raw)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// SendError 消息发送失败。
// Err 为空时表示微信明确拒绝（Code 为其错误码），否则表示参数无效或响应无法解析。
type SendError struct {
	Code int64
	Msg  string
	Raw  string
	Err  error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("发送模板消息错误：%v, 响应=%s", e.Err, e.Raw)
	}
	return fmt.Sprintf("发送模板消息错误：errcode=%d, errmsg=%s", e.Code, e.Msg)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// Rejected 判断是否为微信明确拒绝。
func (e *SendError) Rejected() bool {
	return e.Err == nil
}

// CacheError 令牌缓存读写失败，调用方应视为缓存未命中。
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("令牌缓存%s失败：键=%s, 错误=%v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
