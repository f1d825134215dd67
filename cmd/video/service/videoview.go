package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type VideoViewService struct {
	ctx context.Context
}

func NewVideoViewService(ctx context.Context) *VideoViewService {
	return &VideoViewService{ctx: ctx}
}

// ViewContent counts one view of a video per user; repeat views are no-ops. Posts
// have no view counter.
func (s *VideoViewService) ViewContent(contentId, userId string, t model.ContentType) (*model.VideoView, error) {
	switch t {
	case model.ContentVideo:
	case model.ContentPost:
		return nil, errno.RequestErr.WithMessage("Posts can not be viewed")
	default:
		return nil, errno.RequestErr.WithMessage("Unknown content type " + string(t))
	}

	defer db.Lock()()
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUser(users, userId)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	set, err := db.LoadContent(s.ctx, t)
	if err != nil {
		return nil, err
	}
	c, ok := set.Find(contentId)
	if !ok {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}

	if !utils.Contains(user.ViewedVideos, contentId) {
		c.Video.Views++
		user.ViewedVideos = append(user.ViewedVideos, contentId)
		if err := db.SaveContent(s.ctx, set); err != nil {
			return nil, errors.WithMessage(err, "dao.SaveContent failed")
		}
		if err := db.SaveUsers(s.ctx, users); err != nil {
			return nil, errors.WithMessage(err, "dao.SaveUsers failed")
		}
	}
	return hydrate.Video(c.Video, hydrate.Users(users)), nil
}
