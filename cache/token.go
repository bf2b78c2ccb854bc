package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gotid/wechat-mp/util"
	"github.com/zeromicro/go-zero/core/logx"
)

// SafetyMargin 令牌提前过期的秒数，用于抵消时钟偏差和请求耗时。
const SafetyMargin = 300

// ReferenceZone 令牌过期时间使用的时区（UTC+8）。
var ReferenceZone = time.FixedZone("CST", 8*60*60)

// Record 是缓存中的令牌记录。
type Record struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // 有效期（秒）
	Timestamp   int64  `json:"timestamp"`  // 签发时间（秒）
}

// Fresh 判断记录在 now 时刻是否仍可使用。
func (r *Record) Fresh(now time.Time) bool {
	return now.Unix()-r.Timestamp < r.ExpiresIn-SafetyMargin
}

// Remaining 返回记录在 now 时刻的剩余有效秒数，最小为 0。
func (r *Record) Remaining(now time.Time) int64 {
	remaining := r.ExpiresIn - (now.Unix() - r.Timestamp)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ExpiresAt 返回记录的名义过期时间。
func (r *Record) ExpiresAt() time.Time {
	return time.Unix(r.Timestamp+r.ExpiresIn, 0).In(ReferenceZone)
}

type (
	// TokenCache 单槽位的访问令牌缓存。
	// Get 可并发调用；Put 互斥执行，后写者生效。
	TokenCache struct {
		mu    sync.Mutex
		store Cache
		key   string
		now   func() time.Time
	}

	// TokenCacheOption 自定义 TokenCache 的方法。
	TokenCacheOption func(tc *TokenCache)
)

// WithClock 自定义当前时间的获取方式。
func WithClock(now func() time.Time) TokenCacheOption {
	return func(tc *TokenCache) {
		tc.now = now
	}
}

// NewTokenCache 返回一个以 key 存储于 store 的令牌缓存。
func NewTokenCache(store Cache, key string, opts ...TokenCacheOption) *TokenCache {
	tc := &TokenCache{
		store: store,
		key:   key,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Put 以当前时间为签发时间覆盖保存令牌。
// 保存失败时原记录保持不变，返回 *util.CacheError。
func (tc *TokenCache) Put(token string, ttlSeconds int64) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	data, err := json.Marshal(&Record{
		AccessToken: token,
		ExpiresIn:   ttlSeconds,
		Timestamp:   tc.now().Unix(),
	})
	if err != nil {
		return &util.CacheError{Op: "写入", Key: tc.key, Err: err}
	}

	if err = tc.store.Set(tc.key, data); err != nil {
		return &util.CacheError{Op: "写入", Key: tc.key, Err: err}
	}

	return nil
}

// Get 返回未过期的令牌，读取失败或已过期时返回 false。
func (tc *TokenCache) Get() (string, bool) {
	record, ok := tc.load()
	if !ok {
		return "", false
	}

	if !record.Fresh(tc.now()) {
		logx.Debugf("缓存的访问令牌已过期：键=%s", tc.key)
		return "", false
	}

	return record.AccessToken, true
}

// RemainingValidity 返回令牌剩余的有效秒数，无记录时返回 0。
func (tc *TokenCache) RemainingValidity() int64 {
	record, ok := tc.load()
	if !ok {
		return 0
	}
	return record.Remaining(tc.now())
}

// ExpiryInstant 返回令牌的名义过期时间，无记录时返回零值时间。
func (tc *TokenCache) ExpiryInstant() time.Time {
	record, ok := tc.load()
	if !ok {
		return time.Time{}
	}
	return record.ExpiresAt()
}

func (tc *TokenCache) load() (*Record, bool) {
	data, err := tc.store.Get(tc.key)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		logx.Error(&util.CacheError{Op: "读取", Key: tc.key, Err: err})
		return nil, false
	}

	var record Record
	if err = json.Unmarshal(data, &record); err != nil {
		logx.Error(&util.CacheError{Op: "解析", Key: tc.key, Err: err})
		return nil, false
	}
	if record.AccessToken == "" {
		return nil, false
	}

	return &record, true
}
