package main

import (
	"fmt"
	"os"

	wechat "github.com/gotid/wechat-mp"
	"github.com/gotid/wechat-mp/cache"
	"github.com/gotid/wechat-mp/context"
	"github.com/gotid/wechat-mp/msg"
)

func main() {
	appID := os.Getenv("WECHAT_APP_ID")
	tokens := cache.NewTokenCache(cache.NewFile("data"), cache.KeyAccessToken(appID))

	wc := wechat.New(&context.Context{
		AppID:     appID,
		AppSecret: os.Getenv("WECHAT_APP_SECRET"),
		Cache:     tokens,
	})

	m := msg.NewTemplateMessage(os.Getenv("WECHAT_OPENID"), os.Getenv("WECHAT_TEMPLATE_ID"), msg.Values(map[string]string{
		"first":    "您好，您的订单已发货",
		"keyword1": "20240101001",
	}))
	m.URL = "https://example.com/orders/20240101001"

	ok, err := wc.MP().SendTemplate(m)
	if err != nil {
		fmt.Printf("发送模板消息错误，错误=%v\n", err)
		return
	}
	fmt.Printf("发送结果：%v，令牌剩余 %d 秒\n", ok, tokens.RemainingValidity())
}
