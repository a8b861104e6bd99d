package main

import (
	"context"
	"fmt"

	"speakup/cmd/api/middleware"
	"speakup/cmd/api/router"
	interactiondb "speakup/cmd/interaction/dal/db"
	"speakup/cmd/interaction/infras/redis"
	userdb "speakup/cmd/user/dal/db"
	videodb "speakup/cmd/video/dal/db"
	"speakup/config"
	"speakup/pkg/errno"
	"speakup/pkg/ipfs"
	"speakup/pkg/jwt"
	"speakup/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	logrus.SetFormatter(&logrus.JSONFormatter{})
	jwt.Init(config.ConfigInfo.Jwt.Secret)
	ipfs.Init(config.ConfigInfo.Ipfs.ServiceURL)
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	redis.Load()
	metrics.Init()
	if addr := config.ConfigInfo.Metrics.Addr; addr != "" {
		metrics.Serve(addr)
	}
}

func main() {
	Init()
	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	h := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(128*1024*1024),
	)

	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErr.ErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	h.Use(middleware.AccessLog())
	h.Use(middleware.Prometheus())

	router.Register(h)

	h.Spin()
}
