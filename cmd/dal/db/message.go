package db

import (
	"context"

	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/store"
)

func LoadMessages(ctx context.Context) ([]*model.Message, error) {
	msgs, err := store.Load[*model.Message](ctx, Store, store.Messages)
	if err != nil {
		return nil, ioErr(err, "LoadMessages")
	}
	return msgs, nil
}

func SaveMessages(ctx context.Context, msgs []*model.Message) error {
	if err := store.Save(ctx, Store, store.Messages, msgs); err != nil {
		return ioErr(err, "SaveMessages")
	}
	return nil
}

func LoadNotifications(ctx context.Context) ([]*model.Notification, error) {
	notes, err := store.Load[*model.Notification](ctx, Store, store.Notifications)
	if err != nil {
		return nil, ioErr(err, "LoadNotifications")
	}
	return notes, nil
}

func SaveNotifications(ctx context.Context, notes []*model.Notification) error {
	if err := store.Save(ctx, Store, store.Notifications, notes); err != nil {
		return ioErr(err, "SaveNotifications")
	}
	return nil
}
