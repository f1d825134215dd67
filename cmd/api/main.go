package main

import (
	"context"
	"fmt"
	"time"

	"FlowTube.com/cmd/dal"
	"FlowTube.com/config"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/jwt"
	"FlowTube.com/pkg/mq"
	"FlowTube.com/pkg/oss"
	"FlowTube.com/pkg/search"
	"FlowTube.com/pkg/security"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	dal.Init()
	if err := oss.Init(); err != nil {
		hlog.Fatalf("upload storage: %v", err)
	}
	if err := mq.Init(utils.GetRabbitMqUrl()); err != nil {
		// Notifications are still stored, only the event stream is lost.
		hlog.Warnf("notification events disabled: %v", err)
	}
	search.Init(context.Background())
	if err := security.Init(context.Background()); err != nil {
		hlog.Warnf("rate limiting disabled: %v", err)
	}
	jwt.JwtInit()
}

func main() {
	Init()
	if mq.Default != nil {
		defer mq.Default.Close()
	}

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(512*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r)
	r.Spin()
}
