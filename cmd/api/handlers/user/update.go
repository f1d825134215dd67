package handlers

import (
	"context"

	user "FlowTube.com/cmd/user/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
)

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	sess, err := session.Current(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdateParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	u, err := user.NewUpdateUserService(ctx).UpdateUser(&user.UpdateUserRequest{
		UserId:       sess.UserId,
		Username:     param.Username,
		DisplayName:  param.DisplayName,
		ProfileImage: param.ProfileImage,
		Bio:          param.Bio,
		Banner:       param.Banner,
		Password:     param.Password,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, u)
}
