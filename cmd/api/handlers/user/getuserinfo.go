package handlers

import (
	"context"

	user "FlowTube.com/cmd/user/service"
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetUserInfo answers /users/:id; the id may also be a username.
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	svc := user.NewGetUserInfoService(ctx)
	u, err := svc.GetUser(c.Param("id"))
	if errno.ConvertErr(err).ErrCode == errno.NotFoundErrCode {
		u, err = svc.GetUserByUsername(c.Param("id"))
	}
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, u)
}

func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, err := user.NewGetUserInfoService(ctx).ListUsers()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, users)
}
