package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/config"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/logic"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/svc"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/types"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/mp-notify.yaml", "配置文件")

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	if c.Log.ServiceName == "" {
		c.Log.ServiceName = c.Name
	}
	logx.MustSetup(c.Log)
	defer logx.Close()

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		logx.Errorf("初始化失败：%v", err)
		return 1
	}
	defer svcCtx.Close()

	ctx := context.Background()
	switch args[0] {
	case "token":
		return token(ctx, svcCtx)
	case "send":
		return send(ctx, svcCtx, args[1:])
	default:
		usage()
		return 2
	}
}

func token(ctx context.Context, svcCtx *svc.ServiceContext) int {
	l := logic.NewTokenLogic(ctx, svcCtx)
	reply, err := l.Token()
	if err != nil {
		fmt.Fprintf(os.Stderr, "获取访问令牌失败：%v\n", err)
		return 1
	}

	fmt.Printf("access_token: %s\n", reply.AccessToken)
	fmt.Printf("剩余有效期: %d 秒\n", reply.Remaining)
	fmt.Printf("过期时间: %s\n", reply.ExpiresAt.Format(time.DateTime))
	return 0
}

func send(ctx context.Context, svcCtx *svc.ServiceContext, args []string) int {
	var req types.SendReq
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.StringVar(&req.ToUser, "to", "", "接收者 openid")
	fs.StringVar(&req.TemplateID, "template", "", "模板ID")
	fs.StringVar(&req.Data, "data", "", `模板数据 JSON，如 {"first":{"value":"您好"}}`)
	fs.StringVar(&req.URL, "url", "", "点击跳转的网址")
	fs.StringVar(&req.MiniAppID, "mp-appid", "", "点击跳转的小程序 appid")
	fs.StringVar(&req.MiniPath, "mp-path", "", "点击跳转的小程序页面")
	fs.StringVar(&req.Page, "page", "", "点击跳转的页面")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	l := logic.NewSendLogic(ctx, svcCtx)
	ok, err := l.Send(req)
	if err != nil || !ok {
		fmt.Fprintf(os.Stderr, "发送失败：%v\n", err)
		return 1
	}

	fmt.Println("发送成功")
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, `用法：
  %[1]s [-f 配置文件] token
  %[1]s [-f 配置文件] send -to OPENID -template TEMPLATE_ID [-data JSON] [-url URL] [-mp-appid APPID -mp-path PATH] [-page PAGE]
`, os.Args[0])
	flag.PrintDefaults()
}
