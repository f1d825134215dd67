package handlers

import (
	"context"

	user "FlowTube.com/cmd/user/service"
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind register: %v", err)
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	u, err := user.NewCreateUserService(ctx).CreateUser(&user.CreateUserRequest{
		Username:     param.Username,
		Password:     param.Password,
		DisplayName:  param.DisplayName,
		ProfileImage: param.ProfileImage,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, u)
}
