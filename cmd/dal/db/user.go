package db

import (
	"context"
	"strings"

	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/store"
)

func LoadUsers(ctx context.Context) ([]*model.User, error) {
	users, err := store.Load[*model.User](ctx, Store, store.Users)
	if err != nil {
		return nil, ioErr(err, "LoadUsers")
	}
	return users, nil
}

func SaveUsers(ctx context.Context, users []*model.User) error {
	if err := store.Save(ctx, Store, store.Users, users); err != nil {
		return ioErr(err, "SaveUsers")
	}
	return nil
}

func FindUser(users []*model.User, id string) *model.User {
	for _, u := range users {
		if u.Id == id {
			return u
		}
	}
	return nil
}

// FindUserByUsername matches case-insensitively, the same way uniqueness is checked.
func FindUserByUsername(users []*model.User, username string) *model.User {
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}
