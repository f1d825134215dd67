package service

import (
	"context"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

func (v *LoginUserService) LoginUser(username, password string) (*model.PublicUser, error) {
	users, err := db.LoadUsers(v.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUserByUsername(users, username)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	if err, ok := utils.VerifyPassword(password, user.Password); !ok {
		hlog.CtxInfof(v.ctx, "login rejected for %s: %v", username, err)
		return nil, errno.UnauthorizedErr.WithMessage("Wrong username or password")
	}
	return user.Public(), nil
}
