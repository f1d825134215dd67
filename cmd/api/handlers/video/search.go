package handlers

import (
	"context"

	"FlowTube.com/cmd/model"
	video "FlowTube.com/cmd/video/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/search"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const defaultSearchLimit = 50

// Search asks the search engine first and falls back to a substring filter over
// every video and post when no engine is configured or the engine fails.
func Search(ctx context.Context, c *app.RequestContext) {
	var param SearchParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Limit <= 0 || param.Limit > defaultSearchLimit {
		param.Limit = defaultSearchLimit
	}

	if search.Default != nil {
		items, err := engineSearch(ctx, param.Query, param.Limit)
		if err == nil {
			SendResponse(c, errno.Success, values(items))
			return
		}
		hlog.CtxWarnf(ctx, "search engine failed, using fallback: %v", err)
	}

	items, err := fallbackSearch(ctx, param.Query)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if len(items) > param.Limit {
		items = items[:param.Limit]
	}
	SendResponse(c, errno.Success, values(items))
}

func engineSearch(ctx context.Context, query string, limit int) ([]model.ContentView, error) {
	hits, err := search.Default.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	svc := video.NewVideoListService(ctx)
	items := make([]model.ContentView, 0, len(hits))
	for _, h := range hits {
		item, err := svc.GetContent(h.Type, h.Id)
		if err != nil {
			// stale index entry
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func fallbackSearch(ctx context.Context, query string) ([]model.ContentView, error) {
	svc := video.NewVideoListService(ctx)
	videos, err := svc.ListContent(model.ContentVideo)
	if err != nil {
		return nil, err
	}
	posts, err := svc.ListContent(model.ContentPost)
	if err != nil {
		return nil, err
	}
	return search.Filter(append(videos, posts...), query), nil
}
