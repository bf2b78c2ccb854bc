package config

import (
	"time"

	"github.com/gotid/wechat-mp/cache"
	"github.com/zeromicro/go-zero/core/logx"
)

// 令牌缓存类型
const (
	CacheFile   = "file"
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Name string `json:",default=mp-notify"`
	Log  logx.LogConf

	AppID       string
	AppSecret   string
	TokenURL    string `json:",optional"`
	TemplateURL string `json:",optional"`
	Timeout     int64  `json:",default=10"` // 秒

	Cache CacheConf
}

type CacheConf struct {
	Type  string          `json:",default=file,options=file|redis|memory"`
	Dir   string          `json:",default=data"`
	Redis cache.RedisConf `json:",optional"`
}

// RequestTimeout 返回网络请求超时时间。
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
