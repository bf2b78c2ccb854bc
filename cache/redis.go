package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConf Redis 连接配置
type RedisConf struct {
	Addr     string `json:",optional"`
	Password string `json:",optional"`
	DB       int    `json:",optional"`
}

// Redis 提供一个基于 Redis 的缓存。
type Redis struct {
	client *redis.Client
}

var _ Cache = (*Redis)(nil)

// NewRedis 返回一个新的 Redis 缓存，连接不可用时返回错误。
func NewRedis(c RedisConf) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis 失败：%w", err)
	}

	return &Redis{
		client: client,
	}, nil
}

func (r *Redis) Get(key string) ([]byte, error) {
	v, err := r.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Redis) Set(key string, val []byte) error {
	// 记录自身带有签发时间和有效期，无需设置 Redis 过期时间
	return r.client.Set(context.Background(), key, val, 0).Err()
}

// Close 关闭 Redis 连接。
func (r *Redis) Close() error {
	return r.client.Close()
}
