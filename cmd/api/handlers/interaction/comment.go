package handlers

import (
	"context"

	interaction "FlowTube.com/cmd/interaction/service"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sess, err := session.Current(c)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		var param CommentParam
		if err := c.BindAndValidate(&param); err != nil {
			hlog.CtxInfof(ctx, "bind comment: %v", err)
			SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
			return
		}
		comment, err := interaction.NewCommentService(ctx).AddComment(c.Param("id"), t, sess.UserId, param.Text)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, comment)
	}
}

func CreateReply(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sess, err := session.Current(c)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		var param CommentParam
		if err := c.BindAndValidate(&param); err != nil {
			SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
			return
		}
		reply, err := interaction.NewCommentService(ctx).AddReply(c.Param("id"), t, c.Param("comment_id"), sess.UserId, param.Text)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, reply)
	}
}

// DeleteComment deletes a top-level comment, or a reply when parent_comment_id is
// given in the query.
func DeleteComment(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sess, err := session.Current(c)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		var param DeleteCommentParam
		if err := c.BindAndValidate(&param); err != nil {
			SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
			return
		}
		err = interaction.NewCommentService(ctx).DeleteComment(c.Param("id"), t, c.Param("comment_id"), sess.UserId, param.ParentCommentId)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, nil)
	}
}
