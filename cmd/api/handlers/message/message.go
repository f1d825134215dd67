package handlers

import (
	"context"

	message "FlowTube.com/cmd/message/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
)

func SendMessage(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param SendMessageParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	m, err := message.NewMessageService(ctx).SendMessage(sess.UserId, param.RecipientId, param.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, m)
}

func Conversation(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	items, err := message.NewMessageService(ctx).ListConversation(sess.UserId, c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}

func Inbox(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	items, err := message.NewMessageService(ctx).ListInbox(sess.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
