package handlers

import (
	"context"

	"FlowTube.com/cmd/model"
	video "FlowTube.com/cmd/video/service"
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ListContent serves GET /videos and GET /posts, optionally filtered by author_id.
func ListContent(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		var param ListParam
		if err := c.BindAndValidate(&param); err != nil {
			SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
			return
		}
		svc := video.NewVideoListService(ctx)
		var (
			items []model.ContentView
			err   error
		)
		if param.AuthorId != "" {
			items, err = svc.ListByAuthor(t, param.AuthorId)
		} else {
			items, err = svc.ListContent(t)
		}
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, values(items))
	}
}

func GetContent(t model.ContentType) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		item, err := video.NewVideoListService(ctx).GetContent(t, c.Param("id"))
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, item.Value())
	}
}

func FeedService(ctx context.Context, c *app.RequestContext) {
	items, err := video.NewVideoListService(ctx).Feed()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, values(items))
}

func values(items []model.ContentView) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value())
	}
	return out
}
