package handlers

import (
	"context"

	"FlowTube.com/cmd/model"
	video "FlowTube.com/cmd/video/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateVideo(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind video: %v", err)
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	v, err := video.NewVideoUploadService(ctx).CreateVideo(&video.CreateVideoRequest{
		AuthorId:    sess.UserId,
		Title:       param.Title,
		Description: param.Description,
		Thumbnail:   param.Thumbnail,
		VideoUrl:    param.VideoUrl,
		Duration:    param.Duration,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, v)
}

func CreatePost(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreatePostParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	p, err := video.NewVideoUploadService(ctx).CreatePost(&video.CreatePostRequest{
		AuthorId:    sess.UserId,
		Title:       param.Title,
		Description: param.Description,
		Caption:     param.Caption,
		Image:       param.Image,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, p)
}

func DeleteContent(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sess, err := session.Current(c)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		if err := video.NewVideoDeleteService(ctx).DeleteContent(c.Param("id"), t, sess.UserId); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, nil)
	}
}

func ViewVideo(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	v, err := video.NewVideoViewService(ctx).ViewContent(c.Param("id"), sess.UserId, model.ContentVideo)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, v)
}
