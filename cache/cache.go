// Package cache 提供微信令牌等信息的持久化存取。
package cache

import (
	"errors"
	"fmt"
)

const (
	// 公众号访问令牌
	keyAccessToken = "access_token_%s"
)

// ErrNotFound 表示缓存中不存在指定的键。
var ErrNotFound = errors.New("缓存不存在")

// Cache 是一个简单的键值存储，写入须为整值替换。
type Cache interface {
	// Get 获取指定键对应的值，不存在时返回 ErrNotFound。
	Get(key string) ([]byte, error)
	// Set 设置键值对缓存。
	Set(key string, val []byte) error
}

// KeyAccessToken 获取公众号访问令牌缓存键
func KeyAccessToken(appID string) string {
	return fmt.Sprintf(keyAccessToken, appID)
}
