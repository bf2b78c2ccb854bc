// Package metrics 定义公众号接口调用的监控指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 结果标签取值
const (
	ResultSuccess   = "success"
	ResultRejected  = "rejected"  // 微信返回非 0 错误码
	ResultMalformed = "malformed" // 响应无法解析
	ResultTransport = "transport" // 网络错误
	ResultInvalid   = "invalid"   // 参数无效，未发出请求
	ResultHit       = "hit"
	ResultMiss      = "miss"
)

var (
	TokenFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wechat_mp_token_fetch_total",
		Help: "Total number of access token requests sent to WeChat",
	}, []string{"result"})

	TokenCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wechat_mp_token_cache_total",
		Help: "Total number of access token cache lookups",
	}, []string{"result"})

	TemplateSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wechat_mp_template_send_total",
		Help: "Total number of template message sends",
	}, []string{"result"})
)
