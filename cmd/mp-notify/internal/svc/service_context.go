package svc

import (
	"errors"
	"fmt"
	"io"

	wechat "github.com/gotid/wechat-mp"
	"github.com/gotid/wechat-mp/cache"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/config"
	"github.com/gotid/wechat-mp/context"
	"github.com/gotid/wechat-mp/util"
)

type ServiceContext struct {
	Config config.Config
	Store  cache.Cache
	Tokens *cache.TokenCache
	WeChat *wechat.WeChat
}

// NewServiceContext 在处理任何请求前一次性创建令牌缓存与微信控制器。
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	store, err := newStore(c.Cache)
	if err != nil {
		return nil, err
	}

	tokens := cache.NewTokenCache(store, cache.KeyAccessToken(c.AppID))

	return &ServiceContext{
		Config: c,
		Store:  store,
		Tokens: tokens,
		WeChat: wechat.New(&context.Context{
			AppID:       c.AppID,
			AppSecret:   c.AppSecret,
			TokenURL:    c.TokenURL,
			TemplateURL: c.TemplateURL,
			HTTP:        util.NewClient(c.RequestTimeout()),
			Cache:       tokens,
		}),
	}, nil
}

// Close 释放缓存连接。
func (s *ServiceContext) Close() error {
	if closer, ok := s.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newStore(c config.CacheConf) (cache.Cache, error) {
	switch c.Type {
	case config.CacheFile, "":
		return cache.NewFile(c.Dir), nil
	case config.CacheMemory:
		return cache.NewMemory(), nil
	case config.CacheRedis:
		if c.Redis.Addr == "" {
			return nil, errors.New("Cache.Redis.Addr 未配置")
		}
		return cache.NewRedis(c.Redis)
	default:
		return nil, fmt.Errorf("不支持的缓存类型：%s", c.Type)
	}
}
