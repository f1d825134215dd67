package handlers

import (
	"context"

	relation "FlowTube.com/cmd/relation/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
)

func Subscribe(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	res, err := relation.NewRelationService(ctx).Subscribe(sess.UserId, c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, res)
}

func ListSubscriptions(ctx context.Context, c *app.RequestContext) {
	items, err := relation.NewFollowingListService(ctx).ListSubscriptions(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}

func ListSubscribers(ctx context.Context, c *app.RequestContext) {
	items, err := relation.NewFollowingListService(ctx).ListSubscribers(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
