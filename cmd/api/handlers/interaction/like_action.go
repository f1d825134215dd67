package handlers

import (
	"context"

	interaction "FlowTube.com/cmd/interaction/service"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
)

func LikeAction(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sess, err := session.Current(c)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		res, err := interaction.NewLikeActionService(ctx).LikeContent(c.Param("id"), sess.UserId, t)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, res)
	}
}
