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

// SubscribeResult is the state after a toggle.
type SubscribeResult struct {
	Subscribed  bool  `json:"subscribed"`
	Subscribers int64 `json:"subscribers"`
}

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// Subscribe toggles currentUserId's subscription to channelUserId and keeps the
// channel's subscriber count in step. Only a new subscription is notified.
func (service *RelationService) Subscribe(currentUserId, channelUserId string) (*SubscribeResult, error) {
	if currentUserId == channelUserId {
		return nil, errno.RequestErr.WithMessage("Users can not subscribe to themselves")
	}
	res, err := service.toggle(currentUserId, channelUserId)
	if err != nil {
		return nil, err
	}
	if res.Subscribed {
		if _, err := notification.NewNotificationService(service.ctx).Notify(channelUserId, currentUserId, model.NotifySubscribe, model.NotificationPayload{}); err != nil {
			hlog.CtxErrorf(service.ctx, "notify subscribe to %s: %v", channelUserId, err)
		}
	}
	return res, nil
}

func (service *RelationService) toggle(currentUserId, channelUserId string) (*SubscribeResult, error) {
	defer db.Lock()()

	users, err := db.LoadUsers(service.ctx)
	if err != nil {
		return nil, err
	}
	current := db.FindUser(users, currentUserId)
	channel := db.FindUser(users, channelUserId)
	if current == nil || channel == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}

	res := &SubscribeResult{}
	if utils.Contains(current.Subscriptions, channelUserId) {
		current.Subscriptions = utils.Remove(current.Subscriptions, channelUserId)
		if channel.Subscribers > 0 {
			channel.Subscribers--
		}
	} else {
		current.Subscriptions = utils.AddUnique(current.Subscriptions, channelUserId)
		channel.Subscribers++
		res.Subscribed = true
	}
	res.Subscribers = channel.Subscribers

	if err := db.SaveUsers(service.ctx, users); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveUsers failed")
	}
	return res, nil
}
