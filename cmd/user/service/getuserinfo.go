package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUser(userId string) (*model.PublicUser, error) {
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUser(users, userId)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	return user.Public(), nil
}

func (s *GetUserInfoService) GetUserByUsername(username string) (*model.PublicUser, error) {
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUserByUsername(users, username)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	return user.Public(), nil
}

func (s *GetUserInfoService) ListUsers() ([]*model.PublicUser, error) {
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*model.PublicUser, 0, len(users))
	for _, u := range users {
		res = append(res, u.Public())
	}
	return res, nil
}
