package handlers

import (
	"context"

	notification "FlowTube.com/cmd/notification/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListNotifications(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	svc := notification.NewNotificationService(ctx)
	items, err := svc.List(sess.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	unread, err := svc.UnreadCount(sess.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{"items": items, "unread": unread})
}

func MarkAllRead(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	changed, err := notification.NewNotificationService(ctx).MarkAllRead(sess.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{"updated": changed})
}
