package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/search"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

// DeleteContent removes a video or post; only its author may do so.
func (s *VideoDeleteService) DeleteContent(contentId string, t model.ContentType, userId string) error {
	defer db.Lock()()

	set, err := db.LoadContent(s.ctx, t)
	if err != nil {
		return err
	}
	c, ok := set.Find(contentId)
	if !ok {
		return errno.NotFoundErr.WithMessage("Content not found")
	}
	if c.AuthorId() != userId {
		return errno.UnauthorizedErr.WithMessage("User not authorized to delete this content")
	}
	set.Remove(contentId)
	if err := db.SaveContent(s.ctx, set); err != nil {
		return errors.WithMessage(err, "dao.SaveContent failed")
	}
	if search.Default != nil {
		if err := search.Default.Delete(s.ctx, contentId); err != nil {
			hlog.CtxWarnf(s.ctx, "unindex %s: %v", contentId, err)
		}
	}
	hlog.CtxInfof(s.ctx, "deleted %s %s by %s", t, contentId, userId)
	return nil
}
