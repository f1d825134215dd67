package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	notification "FlowTube.com/cmd/notification/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// LikeResult is the state after a toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// LikeContent toggles userId's like on a video or post. The owner is notified when
// someone else adds a like; unliking is silent.
func (service *LikeActionService) LikeContent(contentId, userId string, t model.ContentType) (*LikeResult, error) {
	res, ownerId, err := service.toggle(contentId, userId, t)
	if err != nil {
		return nil, err
	}
	if res.Liked && ownerId != userId {
		payload := model.NotificationPayload{ContentId: contentId, ContentType: t}
		if _, err := notification.NewNotificationService(service.ctx).Notify(ownerId, userId, model.NotifyLike, payload); err != nil {
			hlog.CtxErrorf(service.ctx, "notify like on %s: %v", contentId, err)
		}
	}
	return res, nil
}

func (service *LikeActionService) toggle(contentId, userId string, t model.ContentType) (*LikeResult, string, error) {
	defer db.Lock()()

	users, err := db.LoadUsers(service.ctx)
	if err != nil {
		return nil, "", err
	}
	user := db.FindUser(users, userId)
	if user == nil {
		return nil, "", errno.NotFoundErr.WithMessage("User not found")
	}
	set, err := db.LoadContent(service.ctx, t)
	if err != nil {
		return nil, "", err
	}
	content, ok := set.Find(contentId)
	if !ok {
		return nil, "", errno.NotFoundErr.WithMessage("Content not found")
	}

	var liked *[]string
	switch t {
	case model.ContentVideo:
		liked = &user.LikedVideos
	case model.ContentPost:
		liked = &user.LikedPosts
	}
	likes := content.LikesRef()
	res := &LikeResult{}
	if utils.Contains(*liked, contentId) {
		*liked = utils.Remove(*liked, contentId)
		if *likes > 0 {
			*likes--
		}
	} else {
		*liked = utils.AddUnique(*liked, contentId)
		*likes++
		res.Liked = true
	}
	res.Likes = *likes

	if err := db.SaveContent(service.ctx, set); err != nil {
		return nil, "", errors.WithMessage(err, "dao.SaveContent failed")
	}
	if err := db.SaveUsers(service.ctx, users); err != nil {
		return nil, "", errors.WithMessage(err, "dao.SaveUsers failed")
	}
	return res, content.AuthorId(), nil
}
