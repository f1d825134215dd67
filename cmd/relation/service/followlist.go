package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
)

type FollowingListService struct {
	ctx context.Context
}

func NewFollowingListService(ctx context.Context) *FollowingListService {
	return &FollowingListService{ctx: ctx}
}

// ListSubscriptions returns the channels userId subscribes to. Ids that no longer
// resolve to a user are skipped.
func (s *FollowingListService) ListSubscriptions(userId string) ([]*model.PublicUser, error) {
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUser(users, userId)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	items := make([]*model.PublicUser, 0, len(user.Subscriptions))
	for _, id := range user.Subscriptions {
		if u := db.FindUser(users, id); u != nil {
			items = append(items, u.Public())
		}
	}
	return items, nil
}

// ListSubscribers returns the users subscribed to userId.
func (s *FollowingListService) ListSubscribers(userId string) ([]*model.PublicUser, error) {
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	if db.FindUser(users, userId) == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	items := make([]*model.PublicUser, 0)
	for _, u := range users {
		if utils.Contains(u.Subscriptions, userId) {
			items = append(items, u.Public())
		}
	}
	return items, nil
}
