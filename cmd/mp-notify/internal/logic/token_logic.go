package logic

import (
	"context"

	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/svc"
	"github.com/gotid/wechat-mp/cmd/mp-notify/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type TokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) TokenLogic {
	return TokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Token 获取访问令牌（缓存或网络）及其有效期信息。
func (l *TokenLogic) Token() (*types.TokenReply, error) {
	token, err := l.svcCtx.WeChat.Context.AccessToken()
	if err != nil {
		l.Errorf("获取访问令牌失败：%v", err)
		return nil, err
	}

	return &types.TokenReply{
		AccessToken: token,
		Remaining:   l.svcCtx.Tokens.RemainingValidity(),
		ExpiresAt:   l.svcCtx.Tokens.ExpiryInstant(),
	}, nil
}
